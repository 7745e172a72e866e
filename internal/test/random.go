package test

import (
	"math/rand"
	"strings"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomASCIIString returns a lowercase alphanumeric string of length within
// [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	var b strings.Builder
	n := minLen + rand.Intn(maxLen-minLen+1)
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphanumeric[rand.Intn(len(alphanumeric))])
	}
	return b.String()
}

// RandomEmail returns a unique-enough address under example.com.
func RandomEmail() string {
	return RandomASCIIString(6, 12) + "@example.com"
}
