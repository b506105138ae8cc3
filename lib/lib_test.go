package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (r row) String() string         { return r.Name }
func (r row) Pretty() string         { return "* " + r.Name }
func (r row) TableHeaders() []string { return []string{"Name", "Count"} }
func (r row) TableRow() []string     { return []string{r.Name, "1"} }

func TestFormatOutput(t *testing.T) {
	data := []row{{Name: "alpha", Count: 1}, {Name: "beta", Count: 2}}

	out, err := FormatOutput(data, Text)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta", out)

	out, err = FormatOutput(data, Pretty)
	require.NoError(t, err)
	assert.Equal(t, "* alpha\n* beta", out)

	out, err = FormatOutput(data, JSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "alpha"`)
	assert.Contains(t, out, `"count": 2`)

	out, err = FormatOutput(data, YAML)
	require.NoError(t, err)
	assert.Contains(t, out, "- name: alpha")

	out, err = FormatOutput(data, Table)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "beta")

	_, err = FormatOutput(data, FormatType("xml"))
	assert.Error(t, err)
}

func TestParseFormatType(t *testing.T) {
	f, err := ParseFormatType(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = ParseFormatType("csv")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "stock-quote.go", FileName("Stock Quote", "soap", ".go"))
	assert.Equal(t, "soap.ts", FileName("", "soap", ".ts"))
	assert.Equal(t, "output.go", FileName("", "", ".go"))
}

func TestColorDiff(t *testing.T) {
	color.NoColor = true

	assert.Empty(t, ColorDiff("same\n", "same\n"))
	assert.Equal(t, "  a\n- b\n+ x\n  c\n", ColorDiff("a\nb\nc\n", "a\nx\nc\n"))
}

func TestColorDiffElidesContext(t *testing.T) {
	color.NoColor = true

	var before []string
	for i := 0; i < 10; i++ {
		before = append(before, string(rune('a'+i)))
	}
	after := append([]string{}, before...)
	after[9] = "z"

	diff := ColorDiff(strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")
	assert.Equal(t, "  ...\n  g\n  h\n  i\n- j\n+ z\n", diff)
}

func TestSetLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	require.NoError(t, SetLogLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	require.NoError(t, SetLogLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Error(t, SetLogLevel("loud"))
}

func TestZeroConsoleAndFileLog(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	path := filepath.Join(t.TempDir(), "soapgen.log")
	closer, err := ZeroConsoleAndFileLog(path, false)
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("hello")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"hello"`)

	_, err = ZeroConsoleAndFileLog(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	assert.Error(t, err)
}
