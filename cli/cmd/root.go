package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "textscan",
		Short:        "textscan",
		SilenceUsage: true,
		Long:         `CLI tool for splitting and parsing text with declarative token specs. Grammars are read from textscan.yaml.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	directory    string
	encodingName string
	verbose      bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory containing textscan.yaml")
	rootCmd.PersistentFlags().StringVarP(&encodingName, "encoding", "e", "utf-8", "character encoding of the input, e.g. windows-1252 or utf-16le")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	return rootCmd.Execute()
}
