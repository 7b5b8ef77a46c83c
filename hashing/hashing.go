/*
Package hashing provides the pluggable policies persistent collections rely on:
hash functions mapping keys to 32-bit integers and equality predicates.

Policies are plain function values. Collections receive them as construction options,
there is no package-level state to overwrite.

A hash function must be deterministic and consistent with the equality predicate
used alongside it, i.e. equal(a, b) ⇒ hash(a) = hash(b).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashing

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'ternary.hashing'.
func tracer() tracing.Trace {
	return tracing.Select("ternary.hashing")
}

// ErrUnhashable is the panic value of Default for key types it does not cover.
var ErrUnhashable = errors.New("hashing: no default hash for type")

// Hasher maps a key to a 32-bit hash value.
type Hasher[K any] func(K) int32

// Equality is a predicate deciding if two values are to be treated as equal.
type Equality[T any] func(a, b T) bool

// --- Hash functions --------------------------------------------------------

// Default is the default hash policy. It covers Go's integer and floating point kinds,
// booleans and strings:
//
//   - integers are truncated to 32 bits (wrapping)
//   - floats are truncated toward zero, then wrapped into 32 bits; NaN and ±Inf hash to 0
//   - strings hash like Java's String.hashCode (see String)
//
// Named types are hashed by their underlying kind. For any other type Default
// panics with ErrUnhashable; clients have to provide their own Hasher then.
func Default[K any](key K) int32 {
	switch k := any(key).(type) {
	case string:
		return String(k)
	case int:
		return int32(k)
	case int32:
		return k
	case int64:
		return int32(k)
	case float64:
		return float(k)
	}
	v := reflect.ValueOf(any(key))
	switch v.Kind() {
	case reflect.String:
		return String(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int32(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int32(v.Uint())
	case reflect.Float32, reflect.Float64:
		return float(v.Float())
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	}
	tracer().Errorf("no default hash for key %v of type %T", key, key)
	panic(fmt.Errorf("%w %T", ErrUnhashable, key))
}

// String hashes a string the way Java's String.hashCode does: h = 31·h + c for each
// UTF-16 code unit c, with 32-bit wrapping arithmetic.
func String(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 { // non-ASCII, switch to UTF-16 code units
			for _, c := range utf16.Encode([]rune(s[i:])) {
				h = 31*h + int32(c)
			}
			return h
		}
		h = 31*h + int32(s[i])
	}
	return h
}

// Integer hashes integer keys by truncating them to 32 bits.
func Integer[K constraints.Integer](key K) int32 {
	return int32(key)
}

// Float hashes floating point keys by truncating them toward zero.
func Float[K constraints.Float](key K) int32 {
	return float(float64(key))
}

func float(x float64) int32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x = math.Mod(math.Trunc(x), 1<<32) // |x| < 2^32 now, safe to convert
	return int32(int64(x))
}

// Murmur3 hashes string-like keys with 32-bit murmur3.
// It spreads similar keys much better than String, at the cost of
// losing compatibility with Java-style hash values.
func Murmur3[K ~string | ~[]byte](key K) int32 {
	return int32(murmur3.Sum32([]byte(key)))
}

// XXHash hashes string-like keys with xxhash64, folded to 32 bits.
func XXHash[K ~string | ~[]byte](key K) int32 {
	h := xxhash.Sum64([]byte(key))
	return int32(uint32(h) ^ uint32(h>>32))
}

// --- Equality --------------------------------------------------------------

// Identical is the default equality policy: reference equality.
// Values of comparable dynamic type are compared with ==; slices, maps and
// functions are identical if they refer to the same underlying storage.
// Structurally equal values at different locations are not identical; clients
// needing that have to use Deep or their own predicate.
func Identical[T any](a, b T) (same bool) {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == y
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) {
		return false
	}
	if tx.Comparable() {
		defer func() { // interface-typed fields may still hold incomparable values
			if recover() != nil {
				same = false
			}
		}()
		return x == y
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	switch vx.Kind() {
	case reflect.Slice:
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	case reflect.Map, reflect.Func:
		return vx.Pointer() == vy.Pointer()
	}
	return false
}

// Comparable compares values with Go's == operator.
func Comparable[T comparable](a, b T) bool {
	return a == b
}

// Deep compares values structurally.
func Deep[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
