package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate(" abc123 "))
	assert.Equal(t, "ABC1D23", NormalizePlate("abc1d23"))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestNormalizePlateIdempotent(t *testing.T) {
	once := NormalizePlate(" xyz 9a87 ")
	assert.Equal(t, once, NormalizePlate(once))
}
