package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/ternary/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

var errTest = errors.New("test failure")

func TestTryCatchesErrorPanics(t *testing.T) {
	r := Try(func() int {
		panic(errTest)
	})
	if !r.IsErr() {
		t.Fatal("expected Try to return Err for panicking function")
	}
	if _, err := r.Get(); !errors.Is(err, errTest) {
		t.Errorf("expected error to wrap errTest, is %v", err)
	}
	r = Try(func() int { return 42 })
	if v, err := r.Get(); err != nil || v != 42 {
		t.Errorf("expected Try to return Ok(42), is (%d, %v)", v, err)
	}
}

func TestTryPassesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected panic 'boom' to pass through Try, got %v", r)
		}
	}()
	Try(func() int {
		panic("boom")
	})
}
