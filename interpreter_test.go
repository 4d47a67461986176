package strscript_test

import (
	"bytes"
	"os"
	"strscript"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name   string `yaml:"name"`
	Config string `yaml:"config"`
	Script string `yaml:"script"`
	Stdout string `yaml:"stdout"`
	Error  string `yaml:"error"`
	Line   uint   `yaml:"line"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	file, err := os.Open("testdata/scenarios.yaml")
	require.NoError(t, err)
	defer file.Close()
	var scenarios []scenario
	require.NoError(t, yaml.NewDecoder(file).Decode(&scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			config := strscript.DefaultConfig()
			if sc.Config != "" {
				var err error
				config, err = strscript.ParseConfig(sc.Config)
				require.NoError(t, err)
			}
			var out bytes.Buffer
			err := strscript.NewInterpreter(&out, config).Run("<test>", []byte(sc.Script))
			assert.Equal(t, sc.Stdout, out.String())
			if sc.Error == "" {
				require.NoError(t, err)
				return
			}
			var e strscript.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, sc.Error, e.Kind().String())
			assert.Equal(t, sc.Line, e.Line())
		})
	}
}

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := strscript.NewInterpreter(&out, strscript.DefaultConfig()).Run("<test>", []byte(source))
	return out.String(), err
}

func TestRun_PrintsDeclaredValues(t *testing.T) {
	for _, val := range []string{"a", "hello world", "x+y", "'quoted'"} {
		out, err := run(t, "VAR v = \""+val+"\"\nPRINT v\n")
		require.NoError(t, err)
		assert.Equal(t, val+"\n", out)
	}
}

func TestRun_ScopeBalancedAfterBodies(t *testing.T) {
	var out bytes.Buffer
	in := strscript.NewInterpreter(&out, strscript.DefaultConfig())
	err := in.Run("<test>", []byte("VAR n = \"aa\"\nWHILE (n) {\n  VAR t = n\n  IF (t ? \"a\") { n = n - \"a\" } ELSE { n = \"\" }\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, in.Scopes().Depth())
	val, err := in.Scopes().Lookup(strscript.Pos{}, "n")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestRun_ErrorInsideBodyUnwindsFrames(t *testing.T) {
	var out bytes.Buffer
	in := strscript.NewInterpreter(&out, strscript.DefaultConfig())
	err := in.Run("<test>", []byte("IF (\"a\") {\n  IF (\"b\") {\n    PRINT missing\n  }\n}\n"))
	assert.Equal(t, strscript.NameError, kindOf(t, err))
	assert.Equal(t, 1, in.Scopes().Depth())
}

func TestRun_StatePersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	in := strscript.NewInterpreter(&out, strscript.DefaultConfig())
	require.NoError(t, in.Run("<repl>", []byte("VAR greeting = \"hi\"\n")))
	require.NoError(t, in.Run("<repl>", []byte("greeting = greeting + \"!\"\nPRINT greeting\n")))
	assert.Equal(t, "hi!\n", out.String())
	err := in.Run("<repl>", []byte("VAR greeting = \"again\"\n"))
	assert.Equal(t, strscript.NameError, kindOf(t, err))
}

func TestRun_BareBlockLeftOpen(t *testing.T) {
	var out bytes.Buffer
	in := strscript.NewInterpreter(&out, strscript.DefaultConfig())
	require.NoError(t, in.Run("<test>", []byte("{\nVAR x = \"a\"\n")))
	assert.Equal(t, 2, in.Scopes().Depth())
	require.NoError(t, in.Run("<test>", []byte("}\n")))
	assert.Equal(t, 1, in.Scopes().Depth())
}

func TestError_Message(t *testing.T) {
	_, err := run(t, "\n\nx = \"a\"\n")
	var e strscript.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, uint(3), e.Line())
	assert.Equal(t, "assignment to undeclared variable 'x'", e.Message())
	assert.Equal(t, "<test>:3: name error: assignment to undeclared variable 'x'", e.Error())
}
