package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGenerator_InOrder(t *testing.T) {
	gen := NewFixedIDGenerator("trace-1", "trace-2")

	assert.Equal(t, "trace-1", gen.Generate())
	assert.Equal(t, "trace-2", gen.Generate())
	// Exhausted: last id repeats
	assert.Equal(t, "trace-2", gen.Generate())
}

func TestFixedIDGenerator_EmptyDefault(t *testing.T) {
	gen := NewFixedIDGenerator()
	assert.Equal(t, "test-trace-default", gen.Generate())
	assert.Equal(t, "test-trace-default", gen.Generate())
}
