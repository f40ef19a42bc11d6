package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-web/pkg/logger"
)

// HeaderRequestID cabecera con el identificador del request.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key de c.Locals con el identificador del request.
const LocalRequestID = "request_id"

// RequestLogger asigna un X-Request-ID (respeta el entrante) y registra una
// línea de acceso por request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		err := c.Next()

		status := c.Response().StatusCode()
		log.Access(status, err).
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// GetRequestID devuelve el identificador del request (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
