// utils/tailnumber_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTailNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"N538CD", "538CD"},
		{"538cd", "538CD"},
		{"  n538CD ", "538CD"},
		{"538CD", "538CD"},
		{"n12345", "12345"},
		{"N123456789", "12345"},
		{"NN538CD", "538CD"},
		{"", ""},
		{"   ", ""},
		{"N", ""},
		{"NN", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeTailNumber(c.in), "input %q", c.in)
	}
}

func TestNormalizeTailNumberIdempotent(t *testing.T) {
	for _, in := range []string{"N538CD", "538cd", "  n538CD ", "N123456789", "NN538CD", ""} {
		once := NormalizeTailNumber(in)
		assert.Equal(t, once, NormalizeTailNumber(once), "input %q", in)
	}
}
