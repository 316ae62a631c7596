package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/itsales/pos-api/pkg/logger"
)

func TestNew_NivelYServicio(t *testing.T) {
	l := logger.New(logger.Config{Service: "pos-api", Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	// Nivel desconocido o vacío cae a info.
	l = logger.New(logger.Config{Service: "pos-api", Env: "production", Level: "ruidoso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")
	assert.Contains(t, buf.String(), `"service":"pos-api"`)
}

func TestComponent_AnadeCampo(t *testing.T) {
	l := logger.New(logger.Config{Service: "pos-api", Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Component("postgres").Zerolog().Output(&buf)
	zl.Info().Msg("pool listo")

	out := buf.String()
	assert.Contains(t, out, `"component":"postgres"`)
	assert.Contains(t, out, `"service":"pos-api"`)
}
