package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
)

// newID genera un UUIDv7 (ordenado por tiempo).
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: generar id: %w", domain.ErrStorage, err)
	}
	return id.String(), nil
}

// now devuelve la hora actual en UTC con la precisión que guardan ambos motores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
