package chart

import (
	"reflect"
	"strings"
)

// ListenerFunc is an interaction callback. Dispatch happens in drawing
// code; the registry only guarantees order and uniqueness of entries.
type ListenerFunc func(d Datum, i int)

// Listener is a single action subscription.
type Listener struct {
	Action string
	Method ListenerFunc
}

// On registers a callback for an interaction action. The action is
// lower-cased. Re-registering the same (action, method) pair replaces the
// existing entry instead of firing twice, with the new entry appended last.
func (b *Base) On(action string, method ListenerFunc) *Base {
	action = strings.ToLower(action)

	b.removeListeners(action, method)
	b.listeners = append(b.listeners, Listener{Action: action, Method: method})

	return b
}

// Off removes subscriptions for an action. With a method given, only
// entries with that exact method are removed; without one, every entry for
// the action goes.
func (b *Base) Off(action string, method ...ListenerFunc) *Base {
	action = strings.ToLower(action)

	if len(method) == 0 {
		b.removeListeners(action, nil)

		return b
	}

	for _, m := range method {
		b.removeListeners(action, m)
	}

	return b
}

// Listeners returns a snapshot of the registry in registration order.
// Mutating the returned slice does not affect the registry.
func (b *Base) Listeners() []Listener {
	out := make([]Listener, len(b.listeners))
	copy(out, b.listeners)

	return out
}

// removeListeners deletes entries matching the action, and the method when
// one is given. Matching indices are collected first and removed in
// descending order so earlier removals never shift later matches.
func (b *Base) removeListeners(action string, method ListenerFunc) {
	var matches []int

	for i, l := range b.listeners {
		if l.Action != action {
			continue
		}

		if method != nil && !sameFunc(l.Method, method) {
			continue
		}

		matches = append(matches, i)
	}

	for i := len(matches) - 1; i >= 0; i-- {
		idx := matches[i]
		b.listeners = append(b.listeners[:idx], b.listeners[idx+1:]...)
	}
}

// sameFunc reports whether two callbacks are the same function value.
// Function values are not comparable in Go, so identity is the code
// pointer; distinct closures over the same code compare equal, which is
// the useful behavior for dedup of re-registered callbacks.
func sameFunc(a, b ListenerFunc) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
