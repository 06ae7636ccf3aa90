// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupStatus tells whether a remote detail lookup produced a value.
type LookupStatus int

const (
	// Found means the lookup returned a value.
	Found LookupStatus = iota
	// NotAvailable means the value exists upstream but is withheld, for
	// example EXIF hidden by the owner or a photo without geotag.
	NotAvailable
	// NotFound means the entity itself no longer exists upstream.
	NotFound
)

// String returns the lowercase status name.
func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotAvailable:
		return "not_available"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Lookup carries the outcome of a remote detail call that may legitimately
// come back empty.
type Lookup[T any] struct {
	Status LookupStatus
	Value  T
}

// FoundValue wraps v into a [Found] lookup.
func FoundValue[T any](v T) Lookup[T] {
	return Lookup[T]{Status: Found, Value: v}
}

// Unavailable returns a [NotAvailable] lookup.
func Unavailable[T any]() Lookup[T] {
	return Lookup[T]{Status: NotAvailable}
}

// Missing returns a [NotFound] lookup.
func Missing[T any]() Lookup[T] {
	return Lookup[T]{Status: NotFound}
}

// Ok reports whether the lookup holds a value.
func (l Lookup[T]) Ok() bool {
	return l.Status == Found
}
