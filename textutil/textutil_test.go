package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = "Hello from C# 14"

func TestWordCount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Sample sentence", input: sample, expected: 4},
		{name: "Empty string", input: "", expected: 0},
		{name: "Only spaces", input: "    ", expected: 0},
		{name: "Repeated separators", input: "  one   two ", expected: 2},
		{name: "Tabs do not separate", input: "one\ttwo", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WordCount(tc.input))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(sample))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{name: "Longer than limit", input: sample, maxLength: 10, expected: "Hello from..."},
		{name: "Exactly at limit", input: sample, maxLength: len(sample), expected: sample},
		{name: "Shorter than limit", input: "short", maxLength: 10, expected: "short"},
		{name: "Zero limit", input: "abc", maxLength: 0, expected: "..."},
		{name: "Negative limit", input: "abc", maxLength: -3, expected: "..."},
		{name: "Multi-byte characters", input: "héllo wörld", maxLength: 5, expected: "héllo..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Truncate(tc.input, tc.maxLength))
		})
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "41 #C morf olleH", Reverse(sample))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "a", Reverse("a"))
	assert.Equal(t, "dlröw", Reverse("wörld"))
	assert.Equal(t, sample, Reverse(Reverse(sample)))
}
