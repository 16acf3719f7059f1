package inventory_test

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/inventory"
)

func TestParsePrice(t *testing.T) {
	price, err := inventory.ParsePrice(" 9.99 ")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("9.99")))

	for _, raw := range []string{"", "abc", "-1", "1.999", "9,99"} {
		_, err := inventory.ParsePrice(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %q debe rechazarse", raw)
	}

	zero, err := inventory.ParsePrice("0")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestParseStock(t *testing.T) {
	stock, err := inventory.ParseStock("10")
	require.NoError(t, err)
	assert.Equal(t, 10, stock)

	for _, raw := range []string{"", "diez", "1.5", "-3"} {
		_, err := inventory.ParseStock(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock %q debe rechazarse", raw)
	}
}

func TestValidatePrice_LimiteDeDigitosEnteros(t *testing.T) {
	assert.NoError(t, inventory.ValidatePrice(decimal.RequireFromString("9999999999.99")))

	for _, raw := range []string{"10000000000", "10000000000.00", "12345678901234567.89"} {
		err := inventory.ValidatePrice(decimal.RequireFromString(raw))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %s debe rechazarse", raw)
	}
}

func TestValidateStock_LimiteDeEntero32(t *testing.T) {
	assert.NoError(t, inventory.ValidateStock(inventory.MaxStock))
	assert.ErrorIs(t, inventory.ValidateStock(inventory.MaxStock+1), domain.ErrInvalidInput)

	_, err := inventory.ParseStock(strconv.Itoa(inventory.MaxStock + 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = inventory.ParseStock("99999999999999999999")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequireText(t *testing.T) {
	got, err := inventory.RequireText("nombre", "  Martillo ")
	require.NoError(t, err)
	assert.Equal(t, "Martillo", got)

	_, err = inventory.RequireText("nombre", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
