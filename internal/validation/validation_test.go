package validation

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCNPJ(t *testing.T) {
	assert.True(t, IsCNPJ("11.222.333/0001-81"))
	assert.True(t, IsCNPJ("11444777000161"))

	assert.False(t, IsCNPJ("11.222.333/0001-82"), "wrong check digit")
	assert.False(t, IsCNPJ("11222333/0001-81"), "partially formatted")
	assert.False(t, IsCNPJ("00.000.000/0000-00"), "repeated digits")
	assert.False(t, IsCNPJ(""))
}

func TestNormalizeCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", NormalizeCNPJ("11222333000181"))
	assert.Equal(t, "11.222.333/0001-81", NormalizeCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "123", NormalizeCNPJ("123"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Sup3r$ecret"))
	assert.False(t, IsStrongPassword("sup3r$ecret"), "no upper case")
	assert.False(t, IsStrongPassword("Super$ecret"), "no digit")
	assert.False(t, IsStrongPassword("Sup3rSecret"), "no symbol")
}

func TestStructReportsJSONNames(t *testing.T) {
	err := Struct(&dto.CreateUserRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "weakpassword",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must be at least 3")
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password must contain")
}

func TestStructAddress(t *testing.T) {
	req := dto.CreateAddressRequest{
		Landlord:     "Maria Souza",
		PhoneNumber:  "+55 11 99999-0000",
		Label:        "Casa",
		Street:       "Rua das Flores",
		Number:       42,
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01001-000",
	}
	assert.NoError(t, Struct(&req))

	req.ZipCode = "01001000"
	err := Struct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zip_code must be a CEP")
}

func TestStructPartialUpdateSkipsNilFields(t *testing.T) {
	assert.NoError(t, Struct(&dto.UpdateSellerRequest{}))

	bad := "123"
	err := Struct(&dto.UpdateSellerRequest{CNPJ: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cnpj must be a valid CNPJ")
}
