package coll

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

// digest stands in for a non-comparable value as a map key. Two values
// with equal contents hash to the same digest.
type digest [blake2b.Size256]byte

// Key returns a comparable value standing for x under value equality.
// Comparable values are their own key. Slices, maps and structs holding
// them are reduced to a blake2b-256 digest of their canonical encoding, so
// []int{1, 2} and another []int{1, 2} share a key. Values holding functions
// fail with [ErrUnhashable].
func Key(x any) (any, error) {
	if hashable(x) {
		return x, nil
	}
	return digestOf(reflect.ValueOf(x))
}

// Equal reports whether a and b are equal by value.
func Equal(a, b any) bool {
	ka, err := Key(a)
	if err != nil {
		return false
	}
	kb, err := Key(b)
	if err != nil {
		return false
	}
	return ka == kb
}

func digestOf(v reflect.Value) (digest, error) {
	var d digest
	h, err := blake2b.New256(nil)
	if err != nil {
		return d, err
	}
	if err := encodeCanonical(h, v); err != nil {
		return d, err
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}

// encodeCanonical writes a type-tagged msgpack encoding of v to w. Map
// entries are written in digest order so the encoding does not depend on
// map iteration order.
func encodeCanonical(w io.Writer, v reflect.Value) error {
	enc := msgpack.NewEncoder(w)
	v = unwrap(v)
	if !v.IsValid() {
		return enc.EncodeNil()
	}
	if err := enc.EncodeString(v.Type().String()); err != nil {
		return err
	}

	switch v.Kind() {
	case reflect.Bool:
		return enc.EncodeBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return enc.EncodeInt(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return enc.EncodeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return enc.EncodeFloat64(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		if err := enc.EncodeFloat64(real(c)); err != nil {
			return err
		}
		return enc.EncodeFloat64(imag(c))
	case reflect.String:
		return enc.EncodeString(v.String())
	case reflect.Interface:
		// nil interface value nested in a container
		return enc.EncodeNil()
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return enc.EncodeUint(uint64(v.Pointer()))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return enc.EncodeNil()
		}
		if err := enc.EncodeArrayLen(v.Len()); err != nil {
			return err
		}
		for i := range v.Len() {
			if err := encodeCanonical(w, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return encodeMap(enc, v)
	case reflect.Struct:
		if err := enc.EncodeArrayLen(v.NumField()); err != nil {
			return err
		}
		for i := range v.NumField() {
			if err := encodeCanonical(w, v.Field(i)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnhashable, v.Type())
}

func encodeMap(enc *msgpack.Encoder, v reflect.Value) error {
	type kv struct{ k, v digest }
	entries := make([]kv, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		kd, err := digestOf(it.Key())
		if err != nil {
			return err
		}
		vd, err := digestOf(it.Value())
		if err != nil {
			return err
		}
		entries = append(entries, kv{kd, vd})
	}
	slices.SortFunc(entries, func(a, b kv) int { return bytes.Compare(a.k[:], b.k[:]) })

	if err := enc.EncodeMapLen(len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		if err := enc.EncodeBytes(e.k[:]); err != nil {
			return err
		}
		if err := enc.EncodeBytes(e.v[:]); err != nil {
			return err
		}
	}
	return nil
}
