// File: generate.go
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	captcha "textCaptchaAuth"
)

func newGenerateCmd(g *globalOptions) *cobra.Command {
	var (
		out     string
		asB64   bool
		dataURI bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one captcha",
		Long: `Render one captcha image. The answer is printed on the first line of
stdout. With --out the PNG is written to a file; with --base64 or
--data-uri the encoded image is printed on the second line.`,
		Example: `  captchagen generate -o captcha.png
  captchagen generate --seed 42 --data-uri`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, rng, err := g.setup(cmd)
			if err != nil {
				return err
			}
			text, data, err := gen.Generate(rng)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, text)
			switch {
			case dataURI:
				fmt.Fprintln(w, captcha.DataURI(data))
			case asB64:
				fmt.Fprintln(w, captcha.EncodeBase64(data))
			}
			if out != "" {
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return errors.Wrapf(err, "write %s", out)
				}
				loggerFromContext(cmd.Context()).Info("Wrote captcha", "file", out, "bytes", len(data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the PNG to this file")
	cmd.Flags().BoolVar(&asB64, "base64", false, "print the PNG as base64")
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "print the PNG as a data:image/png URI")
	cmd.MarkFlagsMutuallyExclusive("base64", "data-uri")
	return cmd
}
