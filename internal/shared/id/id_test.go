package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_IsUniqueAndValid(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := New()
		assert.True(t, IsValid(v))
		_, dup := seen[v]
		assert.False(t, dup)
		seen[v] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"not-a-uuid", false},
		{" 0d3f4c6e-8a51-4d1a-9b57-0c6d3f6c2f11", false},
		{"0d3f4c6e-8a51-4d1a-9b57-0c6d3f6c2f11", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValid(tt.in), tt.in)
	}
}
