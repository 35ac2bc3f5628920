package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
)

var (
	splitDelims string

	splitCmd = &cobra.Command{
		Use:   "split [file...]",
		Short: "Split every line into delimited fields and print them quoted, one line per input line",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				for _, line := range textscan.Lines(in.text) {
					var quoted []string
					for _, f := range textscan.Split(line, splitDelims) {
						quoted = append(quoted, strconv.Quote(f))
					}
					fmt.Println(strings.Join(quoted, " "))
				}
			}
			return nil
		},
	}

	fieldsCmd = &cobra.Command{
		Use:   "fields [file...]",
		Short: "Print the whitespace separated words of the input, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				for _, f := range textscan.Fields(in.text) {
					fmt.Println(f)
				}
			}
			return nil
		},
	}
)

func init() {
	splitCmd.Flags().StringVarP(&splitDelims, "delims", "s", ",", "field delimiters; every character is one delimiter")
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(fieldsCmd)
}
