/*
File    : golox/function/native.go
*/
package function

import (
	"time"

	"github.com/golox-lang/golox/value"
)

// Native wraps a host-provided function as a value.Callable, grounded on
// the teacher's Builtin{Name, Callback} pairing generalized to the
// Callable interface so natives and user Functions are interchangeable
// everywhere a Value is expected.
type Native struct {
	Name     string
	ArityN   int
	Callback func(args []value.Value) (value.Value, error)
}

func (n *Native) Type() value.Type { return value.TypeCallable }

func (n *Native) String() string { return "<native fn>" }

func (n *Native) Arity() int { return n.ArityN }

func (n *Native) Call(_ any, args []value.Value) (value.Value, error) {
	return n.Callback(args)
}

// Clock is the single native binding required by the external interface:
// arity 0, returns the current Unix time in seconds as a Number.
func Clock() *Native {
	return &Native{
		Name:   "clock",
		ArityN: 0,
		Callback: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
