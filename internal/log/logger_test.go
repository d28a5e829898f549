package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevelPerEnvironment(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("development").GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New("test").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("production").GetLevel())
}
