// Package optional adapts wrapper factories whose configuration is optional,
// letting one factory be used either directly on a target or as a configuring
// call that returns the pending wrapper.
package optional

// Arg is a tagged optional dispatch argument. The zero value is absent,
// meaning the caller supplied nothing for the slot. Arg values only flow
// into Dispatch; they are never handed back to callers.
type Arg struct {
	value   any
	present bool
}

// None returns the absent Arg.
func None() Arg {
	return Arg{}
}

// Some returns an Arg holding v.
func Some(v any) Arg {
	return Arg{value: v, present: true}
}

// Present reports whether a value was supplied.
func (a Arg) Present() bool {
	return a.present
}

// Get returns the held value and whether one was supplied.
func (a Arg) Get() (any, bool) {
	return a.value, a.present
}
