/*
Package result implements results of computations that may fail.

Persistent collections treat misuse (e.g., an index out of range) as a programming
error and panic. Clients which would rather branch on a value wrap the call in Try:

    r := result.Try(func() int { return l.Get(i) })
    if v, err := r.Get(); err != nil {
        …
    }

*/
package result

import (
	"fmt"
	"runtime"
)

type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsErr() bool
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Try calls f and returns its value as Ok. If f panics with an error value,
// the error is returned as Err. Runtime errors (nil dereference and friends) and
// panics with non-error values are not intercepted.
func Try[T any](f func() T) (r Result[T]) {
	defer func() {
		if x := recover(); x != nil {
			err, ok := x.(error)
			if _, isRuntime := x.(runtime.Error); !ok || isRuntime {
				panic(x)
			}
			r = Err[T](fmt.Errorf("recovered: %w", err))
		}
	}()
	return Ok(f())
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Get returns the value and error of r in Go's usual style.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsErr() bool {
	return r.err != nil
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
