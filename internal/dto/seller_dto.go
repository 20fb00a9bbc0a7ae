package dto

type CreateSellerRequest struct {
	StoreName             string  `json:"store_name" validate:"required,min=3,max=100"`
	CNPJ                  string  `json:"cnpj" validate:"required,cnpj"`
	CompanyName           string  `json:"company_name" validate:"required,min=3,max=150"`
	TaxRegime             string  `json:"tax_regime" validate:"required,min=3,max=50"`
	StateRegistration     string  `json:"state_registration" validate:"required,max=50"`
	MunicipalRegistration *string `json:"municipal_registration" validate:"omitempty,max=50"`
	BusinessEmail         *string `json:"business_email" validate:"omitempty,email"`
	PhoneNumber           *string `json:"phone_number" validate:"omitempty,max=30"`
	Website               *string `json:"website" validate:"omitempty,max=255"`
}

// UpdateSellerRequest is a partial update; nil fields are left unchanged.
type UpdateSellerRequest struct {
	StoreName             *string `json:"store_name" validate:"omitempty,min=3,max=100"`
	CNPJ                  *string `json:"cnpj" validate:"omitempty,cnpj"`
	CompanyName           *string `json:"company_name" validate:"omitempty,min=3,max=150"`
	TaxRegime             *string `json:"tax_regime" validate:"omitempty,min=3,max=50"`
	StateRegistration     *string `json:"state_registration" validate:"omitempty,max=50"`
	MunicipalRegistration *string `json:"municipal_registration" validate:"omitempty,max=50"`
	BusinessEmail         *string `json:"business_email" validate:"omitempty,email"`
	PhoneNumber           *string `json:"phone_number" validate:"omitempty,max=30"`
	Website               *string `json:"website" validate:"omitempty,max=255"`
}
