// Package stack provides the focus-tracking ordered container used to
// hold any group of managed entities that always has exactly one
// current element: windows within a workspace, workspaces within the
// manager. It is a zipper over a pair of double-ended queues: the
// elements before the focus ("up", stored nearest-first), the focused
// element itself, and the elements after it ("down", also
// nearest-first). The logical order of the whole structure is
// reverse(up) ++ [focus] ++ down, and a Stack can never be empty.
//
// Methods that mutate the structure return the same *Stack so call
// sites can chain operations. A Stack is a single-owner value: it is
// not safe for concurrent use and never needs to be, since the event
// loop mutates it between events.
package stack

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
)

// Position identifies where InsertAt places a new element relative to
// the current focus.
type Position int

const (
	// Focus replaces the focus point, pushing the current focus down.
	Focus Position = iota
	// Before inserts immediately before the focused element.
	Before
	// After inserts immediately after the focused element.
	After
	// Head inserts as the first element of the stack.
	Head
	// Tail inserts as the last element of the stack.
	Tail
)

// Stack is an ordered, non-empty collection with a single focused
// element. The zero value is a valid one-element stack focused on the
// zero value of T, but callers normally construct one with New, Of or
// FromSlice.
type Stack[T any] struct {
	up    deque.Deque[T] // elements before focus, nearest at the front
	focus T
	down  deque.Deque[T] // elements after focus, nearest at the front
}

// New creates a Stack from the elements before the focus (in logical
// head-first order), the focused element, and the elements after it.
func New[T any](up []T, focus T, down []T) *Stack[T] {
	s := &Stack[T]{focus: focus}
	for _, t := range up {
		s.up.PushFront(t)
	}
	for _, t := range down {
		s.down.PushBack(t)
	}
	return s
}

// Of creates a Stack focused on the first argument with any remaining
// arguments placed after it.
func Of[T any](focus T, down ...T) *Stack[T] {
	return New(nil, focus, down)
}

// FromSlice creates a Stack from a slice, focusing the first element
// and placing the rest after it. The second return value is false if
// the slice is empty: there is no such thing as an empty Stack.
func FromSlice[T any](elems []T) (*Stack[T], bool) {
	if len(elems) == 0 {
		return nil, false
	}
	return New(nil, elems[0], elems[1:]), true
}

// MustFromSlice is FromSlice for call sites that have already proven
// the slice non-empty. It panics on an empty slice; that is a caller
// defect, not a recoverable condition.
func MustFromSlice[T any](elems []T) *Stack[T] {
	s, ok := FromSlice(elems)
	if !ok {
		panic("stack: MustFromSlice called with an empty slice")
	}
	return s
}

// Len reports the number of elements in the stack. It is never zero.
func (s *Stack[T]) Len() int {
	return s.up.Len() + s.down.Len() + 1
}

// Head returns the first element in logical order.
func (s *Stack[T]) Head() T {
	if s.up.Len() > 0 {
		return s.up.Back()
	}
	return s.focus
}

// Focused returns the currently focused element.
func (s *Stack[T]) Focused() T {
	return s.focus
}

// Last returns the last element in logical order.
func (s *Stack[T]) Last() T {
	if s.down.Len() > 0 {
		return s.down.Back()
	}
	return s.focus
}

// swapFocus replaces the focused element and returns the previous one.
func (s *Stack[T]) swapFocus(t T) T {
	old := s.focus
	s.focus = t
	return old
}

// Reverse exchanges the up and down halves, reversing the logical
// order of the stack while keeping the same element focused. O(1).
func (s *Stack[T]) Reverse() *Stack[T] {
	s.up, s.down = s.down, s.up
	return s
}

func (s *Stack[T]) revUp() *Stack[T] {
	reverseDeque(&s.up)
	return s
}

func (s *Stack[T]) revDown() *Stack[T] {
	reverseDeque(&s.down)
	return s
}

func reverseDeque[T any](d *deque.Deque[T]) {
	for i, j := 0, d.Len()-1; i < j; i, j = i+1, j-1 {
		t := d.At(i)
		d.Set(i, d.At(j))
		d.Set(j, t)
	}
}

// FocusUp moves focus to the previous element in logical order,
// wrapping to the last element if focus is already at the head.
func (s *Stack[T]) FocusUp() *Stack[T] {
	switch {
	// xs:x f ys -> xs x f:ys
	case s.up.Len() > 0:
		old := s.swapFocus(s.up.PopFront())
		s.down.PushFront(old)

	// [] f ys:y -> f:ys y []
	case s.down.Len() > 0:
		old := s.swapFocus(s.down.PopBack())
		s.down.PushFront(old)
		s.Reverse().revUp()
	}

	return s
}

// FocusDown moves focus to the next element in logical order, wrapping
// to the head if focus is already at the tail.
func (s *Stack[T]) FocusDown() *Stack[T] {
	switch {
	// xs f y:ys -> xs:f y ys
	case s.down.Len() > 0:
		old := s.swapFocus(s.down.PopFront())
		s.up.PushFront(old)

	// x:xs f [] -> [] x xs:f
	case s.up.Len() > 0:
		old := s.swapFocus(s.up.PopBack())
		s.up.PushFront(old)
		s.Reverse().revDown()
	}

	return s
}

// FocusHead moves focus to the first element without changing the
// logical order of the stack.
func (s *Stack[T]) FocusHead() *Stack[T] {
	if s.up.Len() == 0 {
		return s // focus is already head
	}

	old := s.swapFocus(s.up.PopBack())
	s.down.PushFront(old)
	for s.up.Len() > 0 {
		s.down.PushFront(s.up.PopFront())
	}

	return s
}

// FocusTail moves focus to the last element without changing the
// logical order of the stack.
func (s *Stack[T]) FocusTail() *Stack[T] {
	if s.down.Len() == 0 {
		return s // focus is already tail
	}

	old := s.swapFocus(s.down.PopBack())
	s.up.PushFront(old)
	for s.down.Len() > 0 {
		s.up.PushFront(s.down.PopFront())
	}

	return s
}

// RotateFocusToHead rotates the stack until the focused element is in
// the head position. Focus stays on the same element.
func (s *Stack[T]) RotateFocusToHead() *Stack[T] {
	if s.up.Len() == 0 {
		return s
	}

	for s.up.Len() > 0 {
		s.down.PushBack(s.up.PopBack())
	}

	return s
}

// SwapFocusAndHead exchanges the positions of the head element and the
// focused element. Focus stays with the originally focused element.
func (s *Stack[T]) SwapFocusAndHead() *Stack[T] {
	if s.up.Len() == 0 {
		return s
	}

	s.down.PushFront(s.up.PopBack())
	for s.up.Len() > 0 {
		s.down.PushFront(s.up.PopFront())
	}

	return s
}

// SwapUp exchanges the focused element with its predecessor, wrapping
// from head to tail. Focus stays with the same element.
func (s *Stack[T]) SwapUp() *Stack[T] {
	if s.up.Len() > 0 {
		s.down.PushFront(s.up.PopFront())
		return s
	}
	return s.Reverse().revUp()
}

// SwapDown exchanges the focused element with its successor, wrapping
// from tail to head. Focus stays with the same element.
func (s *Stack[T]) SwapDown() *Stack[T] {
	if s.down.Len() > 0 {
		s.up.PushFront(s.down.PopFront())
		return s
	}
	return s.Reverse().revDown()
}

// RotateUp rotates every element of the stack forward by one position,
// wrapping the head around to the tail. The position of the focus
// point within the stack is unchanged.
func (s *Stack[T]) RotateUp() *Stack[T] {
	if s.up.Len() > 0 {
		s.down.PushBack(s.up.PopBack())
		return s
	}
	return s.Reverse().revUp()
}

// RotateDown rotates every element of the stack back by one position,
// wrapping the tail around to the head. The position of the focus
// point within the stack is unchanged.
func (s *Stack[T]) RotateDown() *Stack[T] {
	if s.down.Len() > 0 {
		s.up.PushBack(s.down.PopBack())
		return s
	}
	return s.Reverse().revDown()
}

// FocusElementBy advances focus until an element satisfying pred is
// focused. At most one full traversal is made: if nothing matches the
// stack is left in its original state.
func (s *Stack[T]) FocusElementBy(pred func(T) bool) *Stack[T] {
	for i := 0; i < s.Len(); i++ {
		if pred(s.focus) {
			return s
		}
		s.FocusDown()
	}
	return s
}

// Insert places t at the focus point, pushing the current focus down
// the stack.
func (s *Stack[T]) Insert(t T) *Stack[T] {
	return s.InsertAt(Focus, t)
}

// InsertAt places t at the requested position. Existing elements shift
// to make room; nothing is dropped.
func (s *Stack[T]) InsertAt(pos Position, t T) *Stack[T] {
	switch pos {
	case Focus:
		old := s.swapFocus(t)
		s.down.PushFront(old)
	case Before:
		s.up.PushFront(t)
	case After:
		s.down.PushFront(t)
	case Head:
		s.up.PushBack(t)
	case Tail:
		s.down.PushBack(t)
	}

	return s
}

// RemoveFocused removes and returns the focused element. Focus moves
// to the nearest element after it, or the nearest before it if none
// remain after. If the removed element was the only one, the returned
// stack is nil.
func (s *Stack[T]) RemoveFocused() (T, *Stack[T]) {
	var next T
	switch {
	case s.down.Len() > 0:
		next = s.down.PopFront()
	case s.up.Len() > 0:
		next = s.up.PopFront()
	default:
		return s.focus, nil
	}

	return s.swapFocus(next), s
}

// Filter retains only the elements satisfying pred. If the focused
// element is dropped, focus moves to the nearest surviving element
// after it, then before it. If nothing matches, the returned stack is
// nil.
func (s *Stack[T]) Filter(pred func(T) bool) *Stack[T] {
	filterDeque(&s.up, pred)
	filterDeque(&s.down, pred)

	if pred(s.focus) {
		return s
	}
	_, rest := s.RemoveFocused()
	return rest
}

func filterDeque[T any](d *deque.Deque[T], pred func(T) bool) {
	for n := d.Len(); n > 0; n-- {
		t := d.PopFront()
		if pred(t) {
			d.PushBack(t)
		}
	}
}

// MapInPlace applies f to every element of the stack, replacing each
// element with the result. Structure and focus position are unchanged.
func (s *Stack[T]) MapInPlace(f func(T) T) *Stack[T] {
	for i := 0; i < s.up.Len(); i++ {
		s.up.Set(i, f(s.up.At(i)))
	}
	s.focus = f(s.focus)
	for i := 0; i < s.down.Len(); i++ {
		s.down.Set(i, f(s.down.At(i)))
	}
	return s
}

// Clone returns a deep copy of the stack structure. Elements are
// copied by assignment, so pointer elements still alias their
// referents.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{focus: s.focus}
	for i := 0; i < s.up.Len(); i++ {
		c.up.PushBack(s.up.At(i))
	}
	for i := 0; i < s.down.Len(); i++ {
		c.down.PushBack(s.down.At(i))
	}
	return c
}

// FromFiltered clones the stack and filters the clone, leaving the
// receiver untouched. Returns nil if no elements match.
func (s *Stack[T]) FromFiltered(pred func(T) bool) *Stack[T] {
	return s.Clone().Filter(pred)
}

// Extract partitions the stack into the elements satisfying pred
// (returned as a stack keeping their relative order, or nil if none
// match) and the elements that do not (returned as a slice in logical
// order). The receiver is not modified. If the focused element is
// extracted, its slot in the returned slice marks the seam where it
// sat relative to its neighbors, so a later re-insert can restore the
// original ordering.
func (s *Stack[T]) Extract(pred func(T) bool) (*Stack[T], []T) {
	var extracted []T
	kept := &Stack[T]{focus: s.focus}

	for i := s.up.Len() - 1; i >= 0; i-- {
		t := s.up.At(i)
		if pred(t) {
			kept.up.PushFront(t)
		} else {
			extracted = append(extracted, t)
		}
	}

	upToFocus := len(extracted)

	for i := 0; i < s.down.Len(); i++ {
		t := s.down.At(i)
		if pred(t) {
			kept.down.PushBack(t)
		} else {
			extracted = append(extracted, t)
		}
	}

	if pred(kept.focus) {
		return kept, extracted
	}

	removed, rest := kept.RemoveFocused()
	extracted = append(extracted, removed)
	copy(extracted[upToFocus+1:], extracted[upToFocus:])
	extracted[upToFocus] = removed

	return rest, extracted
}

// Map applies f to every element of s, returning a new stack with the
// same structure and focus position. It is a package function rather
// than a method because Go methods cannot introduce the second type
// parameter.
func Map[T, U any](s *Stack[T], f func(T) U) *Stack[U] {
	out := &Stack[U]{focus: f(s.focus)}
	for i := 0; i < s.up.Len(); i++ {
		out.up.PushBack(f(s.up.At(i)))
	}
	for i := 0; i < s.down.Len(); i++ {
		out.down.PushBack(f(s.down.At(i)))
	}
	return out
}

// Contains reports whether t is an element of s.
func Contains[T comparable](s *Stack[T], t T) bool {
	if s.focus == t {
		return true
	}
	eq := func(e T) bool { return e == t }
	return s.up.Index(eq) >= 0 || s.down.Index(eq) >= 0
}

// FocusElement moves focus to t if it is present in the stack. The
// stack is unchanged if t is not found.
func FocusElement[T comparable](s *Stack[T], t T) *Stack[T] {
	return s.FocusElementBy(func(e T) bool { return e == t })
}

// Remove removes the first occurrence of t from the stack, checking
// the elements before the focus, then those after it, then the focus
// itself. The bool reports whether t was found. If removing t left the
// stack empty, the returned stack is nil; otherwise it is the (possibly
// unchanged) receiver.
func Remove[T comparable](s *Stack[T], t T) (T, bool, *Stack[T]) {
	eq := func(e T) bool { return e == t }

	if i := s.up.Index(eq); i >= 0 {
		return s.up.Remove(i), true, s
	}
	if i := s.down.Index(eq); i >= 0 {
		return s.down.Remove(i), true, s
	}
	if s.focus == t {
		removed, rest := s.RemoveFocused()
		return removed, true, rest
	}

	var zero T
	return zero, false, s
}

// Equal reports whether two stacks hold the same elements in the same
// order with the same focus. Two nil stacks are equal.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.focus != b.focus || a.up.Len() != b.up.Len() || a.down.Len() != b.down.Len() {
		return false
	}
	for i := 0; i < a.up.Len(); i++ {
		if a.up.At(i) != b.up.At(i) {
			return false
		}
	}
	for i := 0; i < a.down.Len(); i++ {
		if a.down.At(i) != b.down.At(i) {
			return false
		}
	}
	return true
}

// Parts returns the three logical parts of the stack: the elements
// before the focus in head-first order, the focused element, and the
// elements after it. Owners that persist a stack serialize these three
// parts verbatim; New reassembles them.
func (s *Stack[T]) Parts() (up []T, focus T, down []T) {
	for i := s.up.Len() - 1; i >= 0; i-- {
		up = append(up, s.up.At(i))
	}
	for i := 0; i < s.down.Len(); i++ {
		down = append(down, s.down.At(i))
	}
	return up, s.focus, down
}

// String renders the stack as Stack([up...], focus, [down...]) with
// both halves shown in logical order.
func (s *Stack[T]) String() string {
	up := make([]string, 0, s.up.Len())
	for i := s.up.Len() - 1; i >= 0; i-- {
		up = append(up, fmt.Sprint(s.up.At(i)))
	}

	down := make([]string, 0, s.down.Len())
	for i := 0; i < s.down.Len(); i++ {
		down = append(down, fmt.Sprint(s.down.At(i)))
	}

	return fmt.Sprintf("Stack([%s], %v, [%s])",
		strings.Join(up, ", "), s.focus, strings.Join(down, ", "))
}
