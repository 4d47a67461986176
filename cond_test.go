package strscript_test

import (
	"strscript"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evalConditionTest struct {
	source string
	result bool
}

var evalConditionTests = []evalConditionTest{
	{`("abc")`, true},
	{`("")`, false},
	{`(!"")`, true},
	{`(!"abc")`, false},
	{`(empty)`, false},
	{`(!empty)`, true},
	{`("abc" ? "b")`, true},
	{`("abc" ? "d")`, false},
	{`("abc" ? "")`, true},
	{`("abc" == "abc")`, true},
	{`("abc" == "abd")`, false},
	{`("abc" != "abd")`, true},
	{`("abc" != "abc")`, false},
	{`("abc" < "abd")`, true},
	{`("abd" < "abc")`, false},
	{`("abc" <= "abc")`, true},
	{`("b" > "abc")`, true},
	{`("ab" > "abc")`, false},
	{`("abc" >= "abc")`, true},
	{`(!"abc" == "abc")`, false},
	{`(!word ? "z")`, true},
	{`(word == 'word')`, true},
	{`(word ? word)`, true},
}

func TestEvalCondition(t *testing.T) {
	for _, test := range evalConditionTests {
		t.Logf("running test '%s'", test.source)
		scopes := testScopes(t, map[string]string{"word": "word", "empty": ""})
		cond, err := strscript.ParseCondition(strscript.NewStream(scan(t, test.source)))
		require.NoError(t, err)
		ok, err := strscript.EvalCondition(cond, scopes)
		require.NoError(t, err)
		assert.Equal(t, test.result, ok)
	}
}

var parseConditionErrorTests = []string{
	`"a" == "b"`,
	`("a" = "b")`,
	`("a" + "b")`,
	`("a" == )`,
	`(== "a")`,
	`(("a"))`,
	`("a" == "b"`,
	`()`,
}

func TestParseCondition_Errors(t *testing.T) {
	for _, source := range parseConditionErrorTests {
		t.Logf("running test '%s'", source)
		_, err := strscript.ParseCondition(strscript.NewStream(scan(t, source)))
		require.Error(t, err)
		kind, ok := strscript.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, strscript.SyntaxError, kind)
	}
}

func TestEvalCondition_UnknownVariable(t *testing.T) {
	cond, err := strscript.ParseCondition(strscript.NewStream(scan(t, `("a" == missing)`)))
	require.NoError(t, err)
	_, err = strscript.EvalCondition(cond, strscript.NewScopeStack())
	kind, _ := strscript.KindOf(err)
	assert.Equal(t, strscript.NameError, kind)
}

func TestCondition_String(t *testing.T) {
	cond, err := strscript.ParseCondition(strscript.NewStream(scan(t, `(!n ? "a")`)))
	require.NoError(t, err)
	assert.Equal(t, `(!n ? "a")`, cond.String())
}
