package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response respuesta del backend tal cual: estado, headers y cuerpo crudo.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode deserializa el cuerpo JSON en v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("backend: deserializar respuesta: %w", err)
	}
	return nil
}

// ContentType header Content-Type de la respuesta.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// StatusError el backend respondió con un estado fuera de 2xx.
// Response conserva el cuerpo sin normalizar.
type StatusError struct {
	Method   string
	Path     string
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s %s: HTTP %d", e.Method, e.Path, e.Response.StatusCode)
}

// StatusCode atajo a Response.StatusCode.
func (e *StatusError) StatusCode() int { return e.Response.StatusCode }
