package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerName(t *testing.T) {
	name, err := NewCustomerName("棚原")
	require.NoError(t, err)
	assert.Equal(t, "棚原", name.String())

	_, err = NewCustomerName("")
	assert.ErrorIs(t, err, ErrValue)

	_, err = NewCustomerName("   ")
	assert.ErrorIs(t, err, ErrValue)

	_, err = NewCustomerName(strings.Repeat("あ", 101))
	assert.ErrorIs(t, err, ErrValue)
}

func TestNewPhoneNumber(t *testing.T) {
	t.Run("common notations normalize to canonical form", func(t *testing.T) {
		cases := map[string]string{
			"090-1234-5678":    "+819012345678",
			"09012345678":      "+819012345678",
			"+81 90 1234 5678": "+819012345678",
			"+81(0)90-1234-5678": "+819012345678",
			"(03)1234-5678":    "+81312345678",
		}

		for raw, want := range cases {
			phone, err := NewPhoneNumber(raw)
			require.NoError(t, err, "input %q", raw)
			assert.Equal(t, want, phone.String(), "input %q", raw)
		}
	})

	t.Run("non-japanese and malformed numbers are rejected", func(t *testing.T) {
		for _, raw := range []string{"", "+1 555 0100", "12345", "090-12-34", "телефон"} {
			_, err := NewPhoneNumber(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestPhoneNumberDisplay(t *testing.T) {
	mobile, err := NewPhoneNumber("09012345678")
	require.NoError(t, err)
	assert.Equal(t, "090-1234-5678", mobile.Display())

	landline, err := NewPhoneNumber("0312345678")
	require.NoError(t, err)
	assert.Equal(t, "0312345678", landline.Display())
}
