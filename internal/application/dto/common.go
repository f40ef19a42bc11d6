package dto

import "encoding/json"

// PageDTO respuesta de una vista: nombre de la vista y su modelo de datos.
type PageDTO struct {
	View string `json:"view"`
	Data any    `json:"data"`
}

// ErrorResponse cuerpo de error HTTP.
// Detail lleva el cuerpo del backend sin normalizar cuando el error viene de él.
type ErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail,omitempty"`
}

// RawJSON adapta un cuerpo del backend para incrustarlo en una respuesta JSON.
// Cuerpos vacíos → null; cuerpos no JSON → string JSON.
func RawJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
