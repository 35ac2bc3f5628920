package cmd

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/textscan/go/mapfs"
	"github.com/vippsas/textscan/textreader"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

type input struct {
	name string
	text string
}

func decoder() (*encoding.Decoder, error) {
	if encodingName == "" || strings.EqualFold(encodingName, "utf-8") || strings.EqualFold(encodingName, "utf8") {
		return nil, nil
	}
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %s", encodingName)
	}
	return enc.NewDecoder(), nil
}

// readInputs reads the files named in args, or stdin if there are none,
// and decodes them.
func readInputs(args []string) ([]input, error) {
	dec, err := decoder()
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		text, err := decode("-", data, dec)
		if err != nil {
			return nil, err
		}
		return []input{{name: "-", text: text}}, nil
	}

	files := make(mapfs.MapFS)
	for _, arg := range args {
		if _, err := files.Add(arg); err != nil {
			return nil, err
		}
	}

	var result []input
	for _, name := range files.Names() {
		data, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, err
		}
		text, err := decode(name, data, dec)
		if err != nil {
			return nil, err
		}
		result = append(result, input{name: name, text: text})
	}
	return result, nil
}

func decode(name string, data []byte, dec *encoding.Decoder) (string, error) {
	s, err := textreader.NewScannerBytes(data, len(data), dec)
	if err != nil {
		return "", errors.Wrap(err, name)
	}
	logrus.WithField("input", name).Debugf("read %d characters", s.Len())
	return s.Remaining(), nil
}
