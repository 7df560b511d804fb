package stack

// Stack is a LIFO of T backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{items: make([]T, 0, 8)}
}

func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes the top value. ok is false on an empty stack.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}
	value = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Search returns how far below the top the first value matching pred sits,
// 0 being the top, or -1 when nothing matches.
func (s *Stack[T]) Search(pred func(T) bool) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred(s.items[i]) {
			return len(s.items) - 1 - i
		}
	}
	return -1
}
