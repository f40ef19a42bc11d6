package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("view", "Dashboard").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en production cada línea es JSON")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "Dashboard", line["view"])
	assert.Equal(t, "listo", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len(), "info no se emite con nivel warn")

	log.Warn().Msg("emitido")
	assert.Contains(t, buf.String(), "emitido")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})

	log.Debug().Msg("debug")
	log.Info().Msg("info")
	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"info"`)
}

func TestNew_DevelopmentEscribeConsola(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "debug", Output: &buf})

	log.Debug().Str("call", "products").Msg("hola")

	out := buf.String()
	assert.Contains(t, out, "hola")
	assert.Contains(t, out, "call=products")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "la consola no emite JSON")
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() { log.Error().Msg("nada") })
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line), raw)
		lines = append(lines, line)
	}
	return lines
}

func TestNew_AgregaComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Component: "web", Output: &buf})

	log.Info().Msg("arranque")
	assert.Equal(t, "web", decodeLines(t, &buf)[0]["component"])
}

func TestAccess_NivelSegunEstado(t *testing.T) {
	cases := []struct {
		status int
		err    error
		want   string
	}{
		{200, nil, "info"},
		{304, nil, "info"},
		{404, nil, "warn"},
		{502, nil, "error"},
		{200, errors.New("handler"), "error"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		log := logger.New(logger.Config{Env: "production", Output: &buf})
		log.Access(tc.status, tc.err).Int("status", tc.status).Msg("request")

		line := decodeLines(t, &buf)[0]
		assert.Equal(t, tc.want, line["level"], "estado %d", tc.status)
		if tc.err != nil {
			assert.Equal(t, "handler", line["error"])
		}
	}
}

func TestSubloggers_VistaYOperacion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	log.ForView("SalesOrders").Info().Msg("vista diferida cargada")
	log.ForOp("clear_inventory").Debug().Msg("llamando al backend")
	log.Info().Msg("sin campos")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "SalesOrders", lines[0]["view"])
	assert.Equal(t, "clear_inventory", lines[1]["op"])
	assert.NotContains(t, lines[2], "view", "el sublogger no modifica al padre")
	assert.NotContains(t, lines[2], "op")
}
