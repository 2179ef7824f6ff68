package esteria_test

import (
	"testing"

	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/stretchr/testify/assert"
)

func TestCodeMessage(t *testing.T) {
	testCases := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "internal error", code: 1, expected: "system internal error"},
		{name: "authentication", code: 3, expected: "unable to authenticate"},
		{name: "invalid number", code: 7, expected: "invalid NUMBER parameter"},
		{name: "empty text", code: 11, expected: "empty TEXT parameter"},
		{name: "flash flag", code: 15, expected: "Invalid FLAG-FLASH parameter"},
		{name: "convert flag", code: 19, expected: "invalid FLAG-CONVERT parameter"},
		{name: "unmapped code", code: 42, expected: "unknown error"},
		{name: "zero", code: 0, expected: "unknown error"},
		{name: "negative", code: -5, expected: "unknown error"},
		{name: "boundary hundred", code: 100, expected: "unknown error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, esteria.CodeMessage(tc.code))
		})
	}
}
