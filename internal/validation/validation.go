package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$|^\d{14}$`)
	cepPattern  = regexp.MustCompile(`^\d{5}-\d{3}$`)
)

const passwordSymbols = "@$!%*?&.,#^()-_=+"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return IsCNPJ(fl.Field().String())
	})
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return v
}

// Struct validates s against its `validate` tags. The returned error lists
// every failing field by its JSON name.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "len":
		return field + " must have length " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "cnpj":
		return field + " must be a valid CNPJ"
	case "cep":
		return field + " must be a CEP in the form 00000-000"
	case "strongpassword":
		return field + " must contain upper and lower case letters, a digit and a symbol"
	default:
		return field + " is invalid"
	}
}

// IsCNPJ accepts 14 digits, bare or formatted as 00.000.000/0000-00, whose
// check digits are correct.
func IsCNPJ(s string) bool {
	if !cnpjPattern.MatchString(s) {
		return false
	}

	digits := make([]int, 0, 14)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return digits[12] == cnpjCheckDigit(digits[:12]) && digits[13] == cnpjCheckDigit(digits[:13])
}

// NormalizeCNPJ returns the 00.000.000/0000-00 form of a CNPJ given bare or
// formatted. Strings without exactly 14 digits are returned unchanged.
func NormalizeCNPJ(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 14 {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func cnpjCheckDigit(digits []int) int {
	weight := len(digits) - 7
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func IsStrongPassword(s string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
