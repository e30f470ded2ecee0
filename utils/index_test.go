package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.50, Round2(1.499999999))
	assert.Equal(t, 0.10, Round2(0.1))
	assert.Equal(t, 10.35, Round2(10.346))
	assert.Equal(t, -2.50, Round2(-2.499999999))
	assert.Zero(t, Round2(0))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))

	p := StringPtr("hello")
	assert.NotNil(t, p)
	assert.Equal(t, "hello", *p)
}
