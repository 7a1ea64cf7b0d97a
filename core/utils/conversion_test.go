package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12", FormatNumber(12))
	assert.Equal(t, "11.2", FormatNumber(11.2))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "-3.25", FormatNumber(-3.25))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "hello", ToString([]byte("hello")))
	assert.Equal(t, "11.2", ToString(11.2))
	assert.Equal(t, "11.2", ToString(float32(11.2)))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "42", ToString(42))
}
