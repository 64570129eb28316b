package stack

import "iter"

// All returns an iterator over the stack in logical order, head to
// tail. The iterator is restartable and does not modify the stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.up.Len() - 1; i >= 0; i-- {
			if !yield(s.up.At(i)) {
				return
			}
		}
		if !yield(s.focus) {
			return
		}
		for i := 0; i < s.down.Len(); i++ {
			if !yield(s.down.At(i)) {
				return
			}
		}
	}
}

// Unravel returns an iterator starting from the focused element,
// continuing down the stack and then wrapping through the elements
// above the focus in head-first order.
func (s *Stack[T]) Unravel() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.focus) {
			return
		}
		for i := 0; i < s.down.Len(); i++ {
			if !yield(s.down.At(i)) {
				return
			}
		}
		for i := s.up.Len() - 1; i >= 0; i-- {
			if !yield(s.up.At(i)) {
				return
			}
		}
	}
}

// Flatten returns the elements of the stack as a slice in logical
// order, losing the information of which element is focused.
func (s *Stack[T]) Flatten() []T {
	out := make([]T, 0, s.Len())
	for t := range s.All() {
		out = append(out, t)
	}
	return out
}
