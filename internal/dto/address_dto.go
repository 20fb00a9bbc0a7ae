package dto

type CreateAddressRequest struct {
	Landlord     string  `json:"landlord" validate:"required,min=3,max=100"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=30"`
	Label        string  `json:"label" validate:"required,min=3,max=50"`
	Street       string  `json:"street" validate:"required,min=3,max=100"`
	Number       int     `json:"number" validate:"required,gt=0"`
	Complement   *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood string  `json:"neighborhood" validate:"required,min=3,max=100"`
	City         string  `json:"city" validate:"required,min=3,max=100"`
	State        string  `json:"state" validate:"required,len=2"`
	ZipCode      string  `json:"zip_code" validate:"required,cep"`
	IsDefault    bool    `json:"is_default"`
}

type UpdateAddressRequest struct {
	Landlord     *string `json:"landlord" validate:"omitempty,min=3,max=100"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=30"`
	Label        *string `json:"label" validate:"omitempty,min=3,max=50"`
	Street       *string `json:"street" validate:"omitempty,min=3,max=100"`
	Number       *int    `json:"number" validate:"omitempty,gt=0"`
	Complement   *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,min=3,max=100"`
	City         *string `json:"city" validate:"omitempty,min=3,max=100"`
	State        *string `json:"state" validate:"omitempty,len=2"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,cep"`
	IsDefault    *bool   `json:"is_default"`
}
