/*
Package maybe implements an option type for optional attributes.

Design documents omit most attributes most of the time. A missing corner
radius is different from a corner radius of 0, and a missing padding side
defaults to 0 only when at least one other side is present. Maybe makes this
distinction explicit:

    var v float64
    switch m := node.CornerRadius.Match(); m {
    case m.Just(&v):
        // use v
    case m.Nothing():
        // omit
    }

The zero value of Maybe is Nothing, so optional struct fields need no
initialization. Matching is only defined for comparable payloads.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just(x) or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr is Nothing for a nil pointer and Just(*p) otherwise.
// Decoders use it to turn optional JSON fields into option values.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Get returns the value and true for Just, the zero value and false for Nothing.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Any returns true if at least one of ms is Just.
func Any[T any](ms ...Maybe[T]) bool {
	for _, m := range ms {
		if m.tag {
			return true
		}
	}
	return false
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements, see the package documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
