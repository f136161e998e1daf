package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []int
		size     int
		expected [][]int
	}{
		{name: "empty input", items: nil, size: 3, expected: nil},
		{name: "exact multiple", items: []int{1, 2, 3, 4}, size: 2, expected: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder chunk", items: []int{1, 2, 3, 4, 5}, size: 2, expected: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "size larger than input", items: []int{1, 2}, size: 10, expected: [][]int{{1, 2}}},
		{name: "non-positive size", items: []int{1, 2, 3}, size: 0, expected: [][]int{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Chunk(tt.items, tt.size))
		})
	}
}

func TestChunk_FiveHundredOneSplitsIntoTwo(t *testing.T) {
	t.Parallel()

	items := make([]string, 501)
	chunks := Chunk(items, 500)

	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 1)
}

func TestUniqueStrings(t *testing.T) {
	t.Parallel()

	got := UniqueStrings([]string{"b", "a", "", "b", "c", "a"})

	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
