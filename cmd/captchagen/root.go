// File: root.go
package main

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	captcha "textCaptchaAuth"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	verbose    bool
	configPath string
	fontPath   string
	seed       uint64
	render     renderFlags
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "captchagen",
		Short:        "captchagen renders text captcha images",
		Long:         `captchagen draws a random string of unambiguous characters as rotated glyphs over a plain background, crosses it with random strokes and writes PNG images together with their answers.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&opts.fontPath, "font", "", "TrueType font file (default: embedded Go Regular)")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (default: random)")
	opts.render.register(pf)

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newBatchCmd(opts))
	return root
}

// setup resolves config file, flags and font into a generator and a
// random source.
func (o *globalOptions) setup(cmd *cobra.Command) (*captcha.Generator, *rand.Rand, error) {
	logger := loggerFromContext(cmd.Context())

	fc, err := loadFileConfig(o.configPath, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := o.render.apply(cmd.Flags(), &fc.Captcha); err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("font") {
		fc.Font = o.fontPath
	}

	var font *captcha.Font
	if fc.Font == "" {
		font, err = captcha.DefaultFont()
	} else {
		font, err = captcha.LoadFont(fc.Font)
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("font loaded", "name", font.Name(), "path", fc.Font)

	gen, err := captcha.NewGenerator(fc.Captcha, font, captcha.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	seed := o.seed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	logger.Debug("random source", "seed", seed)
	return gen, captcha.NewRand(seed), nil
}
