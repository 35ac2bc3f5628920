package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type fieldOutput struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Offset int    `yaml:"offset"`
}

type recordOutput struct {
	Input  string        `yaml:"input"`
	Fields []fieldOutput `yaml:"fields"`
}

var (
	runCmd = &cobra.Command{
		Use:   "run <grammar> [file...]",
		Short: "Parse every line of the input with a grammar from textscan.yaml and print the records as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

			if len(args) < 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <grammar>")
			}
			grammars, err := LoadConfig()
			if err != nil {
				return err
			}
			g, ok := grammars[args[0]]
			if !ok {
				return fmt.Errorf("grammar %s not present in configuration file", args[0])
			}

			inputs, err := readInputs(args[1:])
			if err != nil {
				return err
			}

			var out []recordOutput
			var failed error
			for _, in := range inputs {
				records, err := g.ParseLines(logger.WithField("input", in.name), in.text)
				if err != nil {
					logger.WithField("input", in.name).Error(err)
					failed = err
				}
				for _, rec := range records {
					ro := recordOutput{Input: in.name}
					for _, f := range rec.Fields {
						ro.Fields = append(ro.Fields, fieldOutput{Name: f.Name, Value: f.Value, Offset: f.Offset})
					}
					out = append(out, ro)
				}
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			return failed
		},
	}

	grammarsCmd = &cobra.Command{
		Use:   "grammars",
		Short: "Lists grammars defined in textscan.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			grammars, err := LoadConfig()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(grammars))
			for k := range grammars {
				names = append(names, k)
			}
			sort.Strings(names)
			for _, k := range names {
				fmt.Printf("%s (%d rules)\n", k, len(grammars[k].Rules))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(grammarsCmd)
}
