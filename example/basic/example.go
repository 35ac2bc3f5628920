package example

import (
	_ "embed"

	"github.com/vippsas/textscan"
)

//go:embed textscan.yaml
var config []byte

//go:embed access.log
var AccessLog string

var Grammars = textscan.MustParseConfig(config)
