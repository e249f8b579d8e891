// File: batch.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const labelsFile = "labels.tsv"

func newBatchCmd(g *globalOptions) *cobra.Command {
	var (
		count int
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render a labelled set of captchas into a directory",
		Long: `Render --count captchas into --dir. Each image is named
<uuid>_<answer>.png and listed with its answer in labels.tsv, which makes
the directory usable as a training or test set for solvers.`,
		Example: `  captchagen batch --count 5000 --dir captcha`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return errors.Errorf("count must be positive, got %d", count)
			}
			gen, rng, err := g.setup(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			n, err := writeBatch(cmd.Context(), gen, rng, dir, count)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d captchas in %s", n, dir))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "number of images")
	cmd.Flags().StringVarP(&dir, "dir", "d", "captcha", "output directory")
	return cmd
}

// challengeSource is the part of *captcha.Generator that writeBatch uses.
type challengeSource interface {
	Generate(rng *rand.Rand) (string, []byte, error)
}

// writeBatch stops early, returning ctx.Err(), when ctx is cancelled.
// Images already written stay listed in the labels file on every exit.
func writeBatch(ctx context.Context, gen challengeSource, rng *rand.Rand, dir string, count int) (written int, err error) {
	logger := loggerFromContext(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "create %s", dir)
	}
	lf, err := os.Create(filepath.Join(dir, labelsFile))
	if err != nil {
		return 0, errors.Wrap(err, "create labels")
	}
	labels := bufio.NewWriter(lf)
	defer func() {
		ferr := labels.Flush()
		if cerr := lf.Close(); ferr == nil {
			ferr = cerr
		}
		if ferr != nil && err == nil {
			err = errors.Wrap(ferr, "write labels")
		}
	}()

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		text, data, err := gen.Generate(rng)
		if err != nil {
			return written, err
		}
		name := fmt.Sprintf("%s_%s.png", uuid.New().String(), text)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return written, errors.Wrapf(err, "write %s", name)
		}
		fmt.Fprintf(labels, "%s\t%s\n", name, text)
		written++
		logger.Debug("captcha written", "file", name, "answer", text)
	}
	return written, nil
}
