package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
)

var (
	kvPairs string
	kvSep   string

	kvCmd = &cobra.Command{
		Use:   "kv [file...]",
		Short: "Parse key=value pairs on every line and print them sorted by key",
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := textscan.SingleRune("--sep", kvSep)
			if err != nil {
				return err
			}
			if sep == 0 {
				return errors.New("--sep must be a single character")
			}
			inputs, err := readInputs(args)
			if err != nil {
				return err
			}

			failed := 0
			for _, in := range inputs {
				for i, line := range textscan.Lines(in.text) {
					kv, err := textscan.KeyValues(line, kvPairs, sep)
					if err != nil {
						logrus.WithFields(logrus.Fields{"input": in.name, "line": i + 1}).Error(err)
						failed++
						continue
					}
					keys := make([]string, 0, len(kv))
					for k := range kv {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Printf("%s=%q\n", k, kv[k])
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d lines could not be parsed", failed)
			}
			return nil
		},
	}
)

func init() {
	kvCmd.Flags().StringVarP(&kvPairs, "pairs", "p", "; \t", "characters separating pairs")
	kvCmd.Flags().StringVar(&kvSep, "sep", "=", "character separating key and value")
	rootCmd.AddCommand(kvCmd)
}
