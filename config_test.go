package textscan

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/textscan/textreader"
)

const sampleConfig = `
grammars:
  access:
    rules:
      - name: method
        spec: {mode: nonwhitespace, skipwhitespace: true}
      - name: path
        spec: {mode: enclosed, start: '"', skipwhitespace: true, allowescape: true}
      - name: status
        spec: {mode: nonwhitespace, skipwhitespace: true}
  csv:
    allowtrailing: true
    rules:
      - name: field
        repeat: true
        spec: {mode: delimited, delims: ",", eofdelim: true}
  section:
    rules:
      - name: name
        spec: {mode: Enclosed, start: "[", end: "]", maxchars: 64}
`

func TestParseConfig(t *testing.T) {
	grammars, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	require.Len(t, grammars, 3)

	access := grammars["access"]
	assert.Equal(t, "access", access.Name)
	require.Len(t, access.Rules, 3)
	assert.Equal(t, textreader.TokenSpec{
		Mode:           textreader.EnclosedMode,
		Start:          '"',
		SkipWhitespace: true,
		AllowEscape:    true,
	}, access.Rules[1].Spec)

	assert.Equal(t, textreader.TokenSpec{Mode: textreader.EnclosedMode, Start: '[', End: ']', MaxChars: 64}, grammars["section"].Rules[0].Spec)

	logger, _ := test.NewNullLogger()
	rec, err := grammars["csv"].Parse(logger, "a,,b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, rec.All("field"))

	rec, err = access.Parse(logger, `GET "/a \"b\"" 200`)
	require.NoError(t, err)
	path, _ := rec.Get("path")
	assert.Equal(t, `/a "b"`, path)
}

func TestParseConfigErrors(t *testing.T) {
	check := func(config string, expected string) func(*testing.T) {
		return func(t *testing.T) {
			_, err := ParseConfig([]byte(config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), expected)
		}
	}

	t.Run("", check(`grammars: {g: {rules: [{spec: {mode: quoted}}]}}`, `unknown mode "quoted"`))
	t.Run("", check(`grammars: {g: {rules: [{spec: {mode: enclosed, start: "ab"}}]}}`, `start must be a single character, got "ab"`))
	t.Run("", check(`grammars: {g: {rules: [{spec: {mode: enclosed}}]}}`, "enclosed spec needs a start character"))
	t.Run("", check(`grammars: {g: {rules: [{name: kw, spec: {mode: literal}}]}}`, "grammar g, rule 1 (kw): literal spec needs a text"))
	t.Run("", check(`grammars: {g: {rules: [{spec: {skipwhitespace: true}}]}}`, "missing or unknown mode"))
	t.Run("", check(`grammars: {g: {rules: [{spec: {mode: word, maxchars: -1}}]}}`, `unknown mode "word"`))
	t.Run("", check(`grammars: {g: {rules: [{spec: {mode: delimited, maxchars: -1}}]}}`, "maxchars cannot be negative"))
	t.Run("", check(`grammars: {g: {allowtrailing: true}}`, "grammar g: no rules"))
}

func TestSingleRune(t *testing.T) {
	r, err := SingleRune("sep", "=")
	require.NoError(t, err)
	assert.Equal(t, '=', r)

	r, err = SingleRune("sep", "")
	require.NoError(t, err)
	assert.Equal(t, rune(0), r)

	_, err = SingleRune("sep", "\xff")
	assert.Error(t, err)
	_, err = SingleRune("sep", "ab")
	assert.EqualError(t, err, `sep must be a single character, got "ab"`)
}
