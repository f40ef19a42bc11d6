// Package logger es el logging estructurado (zerolog) de inventario-web.
//
// Lo que se registra:
//
//   - servidor web: una línea de acceso por request (nivel según el estado
//     HTTP, ver Access), la construcción de cada vista diferida (ForView) y
//     el arranque y apagado del proceso.
//   - CLI: el progreso de cada comando (ForOp) en stderr, siempre como
//     consola legible para no mezclarse con el JSON que va a stdout.
//
// El cliente del backend no registra nada; quien lo invoca decide qué loguear.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env       string    // development -> consola legible; cualquier otro -> JSON
	Level     string    // trace, debug, info, warn, error (vacío o desconocido -> info)
	Component string    // "web", "cli"; se agrega como campo component
	Output    io.Writer // nil -> os.Stdout
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}
	if cfg.Env == "development" {
		// Sin color cuando la salida no es la terminal (tests, archivos).
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.Output != nil, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Component != "" {
		zctx = zctx.Str("component", cfg.Component)
	}
	zl := zctx.Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop logger que descarta todo; útil en tests y comandos silenciosos.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ── Subloggers ────────────────────────────────────────────────────────────────

// ForView sublogger de una vista de página (campo view).
func (l *Logger) ForView(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("view", name).Logger()}
}

// ForOp sublogger de una operación del backend invocada desde la CLI (campo op).
func (l *Logger) ForOp(op string) *Logger {
	return &Logger{zl: l.zl.With().Str("op", op).Logger()}
}

// ── Eventos ───────────────────────────────────────────────────────────────────

// Access evento de la línea de acceso: error si el handler falló o el estado
// es 5xx, warn para 4xx, info para el resto.
func (l *Logger) Access(status int, err error) *zerolog.Event {
	switch {
	case err != nil || status >= 500:
		return l.zl.Error().Err(err)
	case status >= 400:
		return l.zl.Warn()
	default:
		return l.zl.Info()
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal registra y termina el proceso; solo para errores de arranque.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
