// Package lifo implements lifo stack
package lifo

type Stack[T any] struct {
	items []T
}

// Push adds items to the stack, the last one ending on top
func (s *Stack[T]) Push(values ...T) {
	s.items = append(s.items, values...)
}

// Pop removes and returns the last item from the stack
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	val := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return val, true
}

// Peek returns the last item without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items in the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Drain empties the stack, returning the items from bottom to top
func (s *Stack[T]) Drain() []T {
	items := s.items
	s.items = nil
	return items
}
