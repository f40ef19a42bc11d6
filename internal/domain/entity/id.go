package entity

import (
	"bytes"
	"encoding/json"
)

// ID identificador de un recurso del backend. El backend expone ids como UUID
// (string) o como enteros según la versión del esquema; ambos se aceptan.
type ID string

// UnmarshalJSON acepta "abc-123", 42 o null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String devuelve el id tal como lo envió el backend.
func (id ID) String() string { return string(id) }
