package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("Defaults when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("PATHGRID_TEST_UNSET", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("PATHGRID_TEST_UNSET", 7))
	})

	t.Run("Reads set values", func(t *testing.T) {
		t.Setenv("PATHGRID_TEST_STR", "value")
		t.Setenv("PATHGRID_TEST_INT", "42")
		assert.Equal(t, "value", getEnvWithDefault("PATHGRID_TEST_STR", "fallback"))
		assert.Equal(t, 42, getEnvAsIntWithDefault("PATHGRID_TEST_INT", 7))
	})

	t.Run("Empty integer falls back", func(t *testing.T) {
		t.Setenv("PATHGRID_TEST_INT", "")
		assert.Equal(t, 7, getEnvAsIntWithDefault("PATHGRID_TEST_INT", 7))
	})
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrMissingSecret)
	assert.NoError(t, Config{JWTSecret: "secret"}.Validate())
}
