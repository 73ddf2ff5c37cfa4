package stack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendocset/xmltree/internal/stack"
)

func TestStack(t *testing.T) {
	var s stack.Stack[int]
	require.Equal(t, 0, s.Len())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	require.Equal(t, 3, s.Pop())
	require.Equal(t, 2, s.Pop())
	require.Equal(t, 1, s.Pop())
	require.Equal(t, 0, s.Len())
}
