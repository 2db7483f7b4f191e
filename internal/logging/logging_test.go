package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(Config{Level: "debug"}).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New(Config{Level: "warn"}).GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, New(Config{Level: "error"}).GetLevel())
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: "chatty"}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{}).GetLevel())
}
