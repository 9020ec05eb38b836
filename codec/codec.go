// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package codec provides support for interpreting byte slices as
// slices of other basic types such as runes, strings or 64 bit line
// hashes, for use as the element sequences compared by
// cloudeng.io/subseq.
package codec

// DecodeFunc decodes the next item from input, returning the item and
// the number of bytes consumed. Decoding stops when the function
// reports zero bytes consumed.
type DecodeFunc[T any] func(input []byte) (T, int)

// Decoder represents the ability to decode a byte slice into a slice
// of some other data type.
type Decoder[T any] interface {
	Decode(input []byte) []T
}

type options struct {
	resizePercent int
}

// Option represents an option accepted by NewDecoder.
type Option func(*options)

// ResizePercent requests that the returned slice be reallocated if the
// ratio of unused to used capacity exceeds the specified percentage.
// That is, if (cap(slice) - len(slice)) / len(slice) exceeds the
// percentage new underlying storage is allocated and contents copied.
// The default value for ResizePercent is 100.
func ResizePercent(percent int) Option {
	return func(o *options) {
		o.resizePercent = percent
	}
}

// NewDecoder returns a Decoder that applies fn repeatedly to the
// unconsumed portion of its input. utf8.DecodeRune is usable directly
// as a DecodeFunc[rune].
func NewDecoder[T any](fn DecodeFunc[T], opts ...Option) Decoder[T] {
	o := options{resizePercent: 100}
	for _, opt := range opts {
		opt(&o)
	}
	return &decoder[T]{options: o, fn: fn}
}

type decoder[T any] struct {
	options
	fn DecodeFunc[T]
}

// Decode implements Decoder.
func (d *decoder[T]) Decode(input []byte) []T {
	out := make([]T, 0, len(input))
	cursor := 0
	for cursor < len(input) {
		v, n := d.fn(input[cursor:])
		if n == 0 {
			break
		}
		out = append(out, v)
		cursor += n
	}
	return resize(out, d.resizePercent)
}

func resizeNeeded(used, available, percent int) bool {
	wasted := available - used
	if used == 0 {
		used = 1
	}
	return ((wasted * 100) / used) > percent
}

// resize allocates new underlying storage and copies the contents of
// slice to it if the ratio of wasted to used capacity, ie:
//
//	(cap(slice) - len(slice)) / len(slice)
//
// exceeds the specified percentage.
func resize[T any](slice []T, percent int) []T {
	if !resizeNeeded(len(slice), cap(slice), percent) {
		return slice
	}
	r := make([]T, len(slice))
	copy(r, slice)
	return r
}
