// Command dibble prints the definition of a word from locally installed
// dictionary shards.
//
// Usage:
//
//	dibble <word> [flags]
//
// Flags:
//
//	-n, --no-examples  don't show example sentences
//	    --version      print version and exit
//
// Shards are searched in ./dict, the per-user data directory, and
// /usr/share/dibble/dict, in that order.
//
// Exit codes: 0 = definition printed or word not in the dictionary,
// 1 = invalid input or any file/parse error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taranathan/dibble/internal/app"
	"github.com/taranathan/dibble/internal/config"
	"github.com/taranathan/dibble/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Invalid input is already reported by the renderer in alert
		// style; everything else is printed here exactly once.
		if !errors.Is(err, domain.ErrValidation) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noExamples bool

	cmd := &cobra.Command{
		Use:           "dibble <word>",
		Short:         "Quick and local word definitions",
		Version:       app.BuildVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := app.NewLogger(cmd.ErrOrStderr(), cfg.Log)

			a := app.New(cmd.OutOrStdout(), cfg, logger)
			return a.Run(args[0], app.Options{ShowExamples: !noExamples})
		},
	}

	cmd.Flags().BoolVarP(&noExamples, "no-examples", "n", false, "don't show example sentences")

	return cmd
}
