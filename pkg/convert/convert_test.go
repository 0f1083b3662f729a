// Copyright (c) 2026 GolpoHub. All rights reserved.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golpohub/golpohub/pkg/convert"
)

func TestToIntD(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"3", 1, 3},
		{" 12 ", 1, 12},
		{"", 1, 1},
		{"abc", 7, 7},
		{"-2", 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntD(tt.in, tt.def))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes please"))
}
