package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/msnoigrs/gofreqlist"
	"github.com/msnoigrs/gofreqlist/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usageText = `
usage:
%s data-dir frequency_lists.coffee

generates frequency_lists.coffee (zxcvbn's ranked dictionary file) from word frequency data.
data-dir should contain frequency counts, one file per dictionary, named after the
dictionary (extension ignored). The first field of each line is a token; the line
number is its rank.

The output format follows the output file extension: .cpp writes the C++ definition
with packed word tables, .hpp writes the C++ declaration of the dictionary tags, and
anything else writes the CoffeeScript module.

The dictionary settings control which frequency data will be included and at maximum
how many tokens per dictionary. Use --config to replace the defaults with a TOML or
JSON settings file.

If a token appears in multiple frequency lists, it will only appear once in the
emitted file, in the dictionary where it has lowest rank.

Short tokens, if rare, are also filtered out. If a token has higher rank than
10**(token.length), it will be excluded because a bruteforce match would have given
it a lower guess score.

A warning will be printed if the settings contain a dictionary name that doesn't
appear in the data dir, or vice-versa.

Flags:
%s`

func newRootCommand(scriptName string, newLogger func(verbose bool) *zap.Logger) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           scriptName + " data-dir output-file",
		Short:         "Build zxcvbn ranked frequency lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintf(cmd.OutOrStdout(), usageText, scriptName, cmd.Flags().FlagUsages())
				return nil
			}

			settings := gofreqlist.DefaultSettings()
			if configPath != "" {
				var err error
				settings, err = gofreqlist.ReadSettingsFile(configPath)
				if err != nil {
					return err
				}
			}

			log := newLogger(verbose)
			defer log.Sync()

			builder := gofreqlist.NewBuilder(settings, log)
			builder.ScriptName = scriptName
			return builder.Build(args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "dictionary settings file (.toml or .json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-dictionary filter statistics")
	return cmd
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cmd := newRootCommand(filepath.Base(os.Args[0]), logger.New)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
