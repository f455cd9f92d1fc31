/*
File    : golox/value/value_test.go
*/
package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Nil{}))
	assert.False(t, IsTruthy(Bool(false)))
	assert.True(t, IsTruthy(Bool(true)))
	assert.True(t, IsTruthy(Number(0)))
	assert.True(t, IsTruthy(String("")))
}

func TestEqual_CrossTypeNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number(0), String("0")))
	assert.False(t, Equal(Nil{}, Bool(false)))
}

func TestEqual_NilOnlyEqualsNil(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
}

func TestEqual_SameTypeValues(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
}

func TestAdd_NumbersAndStrings(t *testing.T) {
	v, err := Add(Number(1), Number(2))
	require.NoError(t, err)
	assert.Equal(t, Number(3), v)

	v, err = Add(String("a"), String("b"))
	require.NoError(t, err)
	assert.Equal(t, String("ab"), v)
}

func TestAdd_MixedTypesError(t *testing.T) {
	_, err := Add(String("a"), Number(1))
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.Error())
}

func TestArithmetic_NonNumberOperandErrors(t *testing.T) {
	_, err := Sub(String("a"), Number(1))
	require.Error(t, err)
	assert.Equal(t, "Operands must be numbers.", err.Error())

	_, err = Mul(Number(1), Bool(true))
	require.Error(t, err)

	_, err = Div(Number(1), Nil{})
	require.Error(t, err)
}

func TestDiv_ByZeroFollowsIEEE754(t *testing.T) {
	v, err := Div(Number(1), Number(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v.(Number)), 1))

	v, err = Div(Number(0), Number(0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(v.(Number))))
}

func TestComparisons(t *testing.T) {
	v, err := Less(Number(1), Number(2))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)

	v, err = GreaterEqual(Number(2), Number(2))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)
}

func TestNegate(t *testing.T) {
	v, err := Negate(Number(1))
	require.NoError(t, err)
	assert.Equal(t, Number(-1), v)

	_, err = Negate(String("a"))
	require.Error(t, err)
	assert.Equal(t, "Operand must be a number.", err.Error())
}

func TestNot(t *testing.T) {
	assert.Equal(t, Bool(true), Not(Nil{}))
	assert.Equal(t, Bool(false), Not(Bool(true)))
	assert.Equal(t, Bool(false), Not(Number(0)))
}

func TestNumberString_NegativeZeroHasLeadingMinus(t *testing.T) {
	assert.Equal(t, "-0", Number(math.Copysign(0, -1)).String())
	assert.Equal(t, "0", Number(0).String())
}

func TestNumberString_IntegerLooksLikeInteger(t *testing.T) {
	assert.Equal(t, "1", Number(1).String())
	assert.Equal(t, "1.5", Number(1.5).String())
}

func TestDisplayStrings(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}
