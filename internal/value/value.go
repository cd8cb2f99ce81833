// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides helpers for the generic payload V of a trie.
//
// Payloads may bring their own equality (Equaler) and deep copy (Cloner)
// logic. The helpers here decide at runtime which one to use, since you
// can't assert directly on a type parameter.
//
// This is an internal package used by the segtrie implementation.
package value

import "reflect"

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// otherwise reflect.DeepEqual is the fallback.
func Equal[V any](v1, v2 V) bool {
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc takes a value of type V and returns the (possibly cloned) value.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns CloneVal if V implements Cloner[V], else nil.
// A nil CloneFunc means plain assignment is a sufficient copy.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return nil
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V], otherwise val is returned unchanged.
// A typed nil pointer is passed on to its Clone method.
func CloneVal[V any](val V) V {
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// CopyVal just copies the value of any type V.
func CopyVal[V any](val V) V {
	return val
}
