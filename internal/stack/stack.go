package stack

// Stack is a minimal LIFO used by tree algorithms that walk with an
// explicit stack instead of recursion.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top item. Popping an empty stack panics;
// callers guard with Len.
func (s *Stack[T]) Pop() T {
	old := *s
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v
}

func (s Stack[T]) Len() int {
	return len(s)
}
