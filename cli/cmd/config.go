package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/vippsas/textscan"
)

func LoadConfig() (map[string]textscan.Grammar, error) {
	configFilename := path.Join(directory, "textscan.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return nil, errors.Errorf("No textscan.yaml found in %s", directory)
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, err
	}
	grammars, err := textscan.ParseConfig(yamlFile)
	if err != nil {
		return nil, errors.Wrap(err, configFilename)
	}
	return grammars, nil
}
