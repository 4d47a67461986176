package strscript_test

import (
	"strscript"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) []strscript.Token {
	t.Helper()
	tokens, err := strscript.ScanTokens("<test>", []byte(source))
	require.NoError(t, err)
	return tokens[:len(tokens)-1]
}

func testScopes(t *testing.T, vars map[string]string) *strscript.ScopeStack {
	t.Helper()
	scopes := strscript.NewScopeStack()
	for name, val := range vars {
		require.NoError(t, scopes.Declare(strscript.Pos{}, name, val))
	}
	return scopes
}

type evalExprTest struct {
	source string
	result string
}

var evalExprTests = []evalExprTest{
	{`"abc"`, "abc"},
	{`''`, ""},
	{`"a\n"`, `a\n`},
	{`"ab" + "cd"`, "abcd"},
	{`"abcdef" - "cd"`, "abef"},
	{`"abcdef" / "cd"`, "ab"},
	{`"abcdef" % "cd"`, "ef"},
	{`"abcdef" - "xy"`, "abcdef"},
	{`"abcdef" / "xy"`, "abcdef"},
	{`"abcdef" % "xy"`, ""},
	{`"abcabc" - "b"`, "acabc"},
	{`"a.b.c" / "."`, "a"},
	{`"a.b.c" % "."`, "b.c"},
	{`"a" + "b" + "c"`, "abc"},
	{`"abc" + "def" - "cd"`, "abef"},
	{`"xy" + "abcdef" / "cd"`, "xyab"},
	{`("xy" + "abcdef") / "cd"`, "xyab"},
	{`"ab" + "cdef" % "c"`, "abdef"},
	{`("ab" + "cdef") % "c"`, "def"},
	{`"abcdef" - ("c" + "d")`, "abef"},
	{`((("a")))`, "a"},
	{`"a.b.c" % "." % "."`, "c"},
	{`"abc" - "c" - "b"`, "a"},
	{`greeting + " " + name`, "hello world"},
	{`greeting - "l" + name % "o"`, "helorld"},
}

func TestEvalExpr(t *testing.T) {
	for _, test := range evalExprTests {
		t.Logf("running test '%s'", test.source)
		scopes := testScopes(t, map[string]string{"greeting": "hello", "name": "world"})
		val, err := strscript.EvalExpr(scan(t, test.source), scopes)
		require.NoError(t, err)
		assert.Equal(t, test.result, val)
	}
}

var evalExprErrorTests = []struct {
	source string
	kind   strscript.ErrorKind
}{
	{``, strscript.SyntaxError},
	{`"a" +`, strscript.SyntaxError},
	{`+ "a"`, strscript.SyntaxError},
	{`("a" + "b"`, strscript.SyntaxError},
	{`"a" "b"`, strscript.SyntaxError},
	{`"a" + )`, strscript.SyntaxError},
	{`"a" == "b"`, strscript.SyntaxError},
	{`missing + "a"`, strscript.NameError},
	{`"a" + ("b" - missing)`, strscript.NameError},
}

func TestEvalExpr_Errors(t *testing.T) {
	for _, test := range evalExprErrorTests {
		t.Logf("running test '%s'", test.source)
		_, err := strscript.EvalExpr(scan(t, test.source), strscript.NewScopeStack())
		require.Error(t, err)
		kind, ok := strscript.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, test.kind, kind)
	}
}

func TestApply(t *testing.T) {
	assert.Equal(t, "abcd", strscript.Apply(strscript.PLUS, "ab", "cd"))
	assert.Equal(t, "abef", strscript.Apply(strscript.MINUS, "abcdef", "cd"))
	assert.Equal(t, "ab", strscript.Apply(strscript.SLASH, "abcdef", "cd"))
	assert.Equal(t, "ef", strscript.Apply(strscript.PERCENT, "abcdef", "cd"))
	assert.Equal(t, "abc", strscript.Apply(strscript.MINUS, "abc", ""))
	assert.Equal(t, "", strscript.Apply(strscript.SLASH, "abc", ""))
	assert.Equal(t, "abc", strscript.Apply(strscript.PERCENT, "abc", ""))
}
