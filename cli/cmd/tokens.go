package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/textscan"
	"github.com/vippsas/textscan/textreader"
)

var (
	tokenSpec textscan.SpecConfig
	tokenMode string

	tokensCmd = &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Repeatedly extract tokens matching a spec given by flags and print them with their offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tokenSpec.Mode.UnmarshalText([]byte(tokenMode)); err != nil {
				return err
			}
			spec, err := tokenSpec.TokenSpec()
			if err != nil {
				return err
			}
			if spec.NoExtract {
				// a peek never moves, print it once
				logrus.Debug("noextract set, printing the first match only")
			}

			inputs, err := readInputs(args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				s := textreader.NewScanner(in.text)
				for {
					pos := s.Len() - s.EndOfData()
					tok, ok := s.GetNext(&spec)
					if !ok {
						if tok.HaltChar != 0 {
							logrus.WithField("input", in.name).Infof("halted on %q at offset %d", tok.HaltChar, pos)
						}
						break
					}
					fmt.Printf("%s:%d-%d: %q\n", in.name, pos+tok.Start, pos+tok.End, tok.Text)
					if spec.NoExtract {
						break
					}
				}
			}
			return nil
		},
	}
)

func init() {
	f := tokensCmd.Flags()
	f.StringVarP(&tokenMode, "mode", "m", "nonwhitespace", "literal, whitespace, nonwhitespace, delimited or enclosed")
	f.StringVar(&tokenSpec.Text, "text", "", "text to find in literal mode")
	f.StringVar(&tokenSpec.Delims, "delims", "", "delimiter characters")
	f.StringVar(&tokenSpec.Halt, "halt", "", "characters that stop the search")
	f.StringVar(&tokenSpec.Start, "start", "", "opening character in enclosed mode")
	f.StringVar(&tokenSpec.End, "end", "", "closing character in enclosed mode; defaults to the opening character")
	f.BoolVarP(&tokenSpec.IgnoreCase, "ignore-case", "i", false, "compare case insensitively")
	f.BoolVar(&tokenSpec.SkipWhitespace, "skip-whitespace", true, "skip leading whitespace")
	f.BoolVar(&tokenSpec.SkipLeading, "skip-leading", false, "skip non-matching leading characters")
	f.BoolVar(&tokenSpec.NewLineDelim, "newline", false, "treat newlines as delimiters")
	f.BoolVar(&tokenSpec.EOFDelim, "eof", true, "treat end of data as a delimiter")
	f.BoolVar(&tokenSpec.AllowEscape, "escape", false, "allow backslash-escaped closing characters")
	f.BoolVar(&tokenSpec.NoExtract, "peek", false, "report the first match without consuming it")
	f.IntVar(&tokenSpec.MaxChars, "max", 0, "maximum characters to search; 0 for no limit")
	rootCmd.AddCommand(tokensCmd)
}
