package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationKind enumerates the ways a submitted form can be rejected
type ValidationKind int

const (
	MissingField ValidationKind = iota + 1
	InvalidEmail
)

func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case InvalidEmail:
		return "invalid_email"
	default:
		return "unknown"
	}
}

// ValidationError describes the first invalid field of a form
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidEmail:
		return fmt.Sprintf("Ungültige E-Mail-Adresse im Feld %q", e.Field)
	default:
		return fmt.Sprintf("Pflichtfeld fehlt: %s", e.Field)
	}
}

// InquiryForm carries the raw form values of a submission. A nil field was
// not supplied by the client; an empty string was supplied empty.
type InquiryForm struct {
	Name        *string `form:"name" validate:"required"`
	Email       *string `form:"email" validate:"required,email"`
	Phone       *string `form:"phone" validate:"required"`
	ZipCity     *string `form:"zip_city" validate:"required"`
	ProjectType *string `form:"project_type" validate:"required"`
	Description *string `form:"description" validate:"required"`
	Source      *string `form:"source"`
}

// NewValidator returns a validator that reports fields by their form names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the form and builds the Inquiry it describes. The returned
// Inquiry has no files yet and its source defaulted. On failure the error is
// a *ValidationError unless the validator itself could not run.
func (f InquiryForm) Validate(v *validator.Validate) (*Inquiry, error) {
	if f.Email != nil {
		email := strings.TrimSpace(*f.Email)
		f.Email = &email
	}

	if err := v.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return nil, err
		}
		fe := verrs[0]
		kind := MissingField
		if fe.Tag() == "email" {
			kind = InvalidEmail
		}
		return nil, &ValidationError{Field: fe.Field(), Kind: kind}
	}

	source := DefaultSource
	if f.Source != nil && *f.Source != "" {
		source = *f.Source
	}

	return &Inquiry{
		Name:        *f.Name,
		Email:       *f.Email,
		Phone:       *f.Phone,
		ZipCity:     *f.ZipCity,
		ProjectType: *f.ProjectType,
		Description: *f.Description,
		Files:       []InquiryFile{},
		Source:      source,
	}, nil
}
