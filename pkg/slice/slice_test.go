// Copyright (c) 2026 GolpoHub. All rights reserved.

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golpohub/golpohub/pkg/slice"
)

func TestMapFilterFind(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Nil(t, slice.Map[int, int](nil, func(v int) int { return v }))

	even := slice.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.NotNil(t, slice.Filter[int](nil, func(int) bool { return true }))

	found, ok := slice.Find([]string{"a", "bb"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", found)

	_, ok = slice.Find([]string{"a"}, func(s string) bool { return s == "z" })
	assert.False(t, ok)
}
