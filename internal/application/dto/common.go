package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NumberText valor numérico tal como lo escribió el usuario. Acepta un número JSON o un string;
// la interpretación (decimal, entero, rango) la hace el núcleo.
type NumberText string

// UnmarshalJSON acepta 9.99, "9.99" o null.
func (n *NumberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", data)
	}
	*n = NumberText(num.String())
	return nil
}
