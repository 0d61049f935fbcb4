package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounded_Write(t *testing.T) {
	tests := []struct {
		name  string
		write int
		want  int
	}{
		{name: "in range", write: 50, want: 50},
		{name: "lower bound", write: 0, want: 0},
		{name: "upper bound", write: 100, want: 100},
		{name: "below range", write: -1, want: 2},
		{name: "above range", write: 101, want: 2},
		{name: "far below", write: -1000, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBounded(0, 100, 2)
			b.Write(tt.write)
			assert.Equal(t, tt.want, b.Read())
		})
	}
}

func TestBounded_RejectedWriteKeepsPriorValue(t *testing.T) {
	b := NewBounded(2, 100, 10)
	b.Write(57)
	b.Write(1)
	b.Write(101)
	assert.Equal(t, 57, b.Read())
}

func TestBounded_SinglePointRange(t *testing.T) {
	b := NewBounded(5, 5, 5)
	b.Write(4)
	b.Write(6)
	assert.Equal(t, 5, b.Read())
	assert.Equal(t, 5, b.Min())
	assert.Equal(t, 5, b.Max())
}

func TestBounded_ForceBypassesRange(t *testing.T) {
	b := NewBounded(2, 100, 10)
	b.force(0)
	assert.Equal(t, 0, b.Read())

	// Range checks still apply to ordinary writes afterwards
	b.Write(1)
	assert.Equal(t, 0, b.Read())
	b.Write(2)
	assert.Equal(t, 2, b.Read())
}

func TestNewBounded_Panics(t *testing.T) {
	assert.Panics(t, func() { NewBounded(10, 0, 5) }, "empty range")
	assert.Panics(t, func() { NewBounded(0, 10, 11) }, "initial above range")
	assert.Panics(t, func() { NewBounded(2, 10, 1) }, "initial below range")
	assert.NotPanics(t, func() { NewBounded(0, 10, 10) })
}
