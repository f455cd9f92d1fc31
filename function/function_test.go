/*
File    : golox/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEvaluator implements Evaluator by recording that it ran and the frame
// it was handed, then returning a preset result (ExecuteBlock is a stand-in
// for the real interpreter's, since this package must not import the
// interpreter).
type fakeEvaluator struct {
	ran    bool
	env    *environment.Environment
	result error
}

func (f *fakeEvaluator) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	f.ran = true
	f.env = env
	return f.result
}

func TestFunction_ArityMatchesParamCount(t *testing.T) {
	f := &Function{Params: []ast.Token{{Type: lexer.IDENTIFIER, Lexeme: "a"}, {Type: lexer.IDENTIFIER, Lexeme: "b"}}}
	assert.Equal(t, 2, f.Arity())
}

func TestFunction_CallBindsParamsAndRunsBody(t *testing.T) {
	f := &Function{
		Name:    "f",
		Params:  []ast.Token{{Type: lexer.IDENTIFIER, Lexeme: "a"}},
		Closure: environment.New(nil),
	}
	ev := &fakeEvaluator{}
	v, err := f.Call(ev, []value.Value{value.Number(1)})
	require.NoError(t, err)
	assert.True(t, ev.ran)
	assert.Equal(t, value.Nil{}, v)

	bound, err := ev.env.Get("a")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), bound)
}

func TestFunction_CallCatchesReturnSignal(t *testing.T) {
	f := &Function{Closure: environment.New(nil)}
	ev := &fakeEvaluator{result: &ReturnSignal{Value: value.Number(42)}}
	v, err := f.Call(ev, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Number(42), v)
}

func TestFunction_CallPropagatesRealErrors(t *testing.T) {
	f := &Function{Closure: environment.New(nil)}
	ev := &fakeEvaluator{result: assert.AnError}
	_, err := f.Call(ev, nil)
	assert.Equal(t, assert.AnError, err)
}

func TestFunction_String(t *testing.T) {
	f := &Function{Name: "add"}
	assert.Equal(t, "<fn add>", f.String())
}

func TestNative_ClockArityAndType(t *testing.T) {
	c := Clock()
	assert.Equal(t, 0, c.Arity())
	assert.Equal(t, "<native fn>", c.String())
	v, err := c.Call(nil, nil)
	require.NoError(t, err)
	_, ok := v.(value.Number)
	assert.True(t, ok)
}
