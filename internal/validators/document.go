package validators

import (
	"context"

	"github.com/MKhiriev/go-statement-list/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	FieldCompanyID     = "company_id"
	FieldTitle         = "title"
	FieldPeriod        = "period"
	FieldFormat        = "format"
	FieldCurrency      = "currency"
	FieldName          = "name"
	FieldReferenceType = "reference_type"
	FieldStatus        = "status"
)

const maxCompanyIDLength = 64

var allowedFormats = []models.StatementFormat{
	models.FormatOneS,
	models.FormatPDF,
	models.FormatXLSX,
}

// DocumentValidator implements [Validator] for the requests accepted by the
// feed server: token requests, statement and reference orders and status
// changes. Both values and pointers are accepted.
type DocumentValidator struct {
}

// NewDocumentValidator constructs a DocumentValidator.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TokenRequest:
		return v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value, fields...)

	case models.StatementRequest:
		return v.validateStatementRequest(value, fields...)
	case *models.StatementRequest:
		return v.validateStatementRequest(*value, fields...)

	case models.ReferenceRequest:
		return v.validateReferenceRequest(value, fields...)
	case *models.ReferenceRequest:
		return v.validateReferenceRequest(*value, fields...)

	case models.StatusChangeRequest:
		return v.validateStatusChangeRequest(value, fields...)
	case *models.StatusChangeRequest:
		return v.validateStatusChangeRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidCompanyID reports whether id can be used as a company identifier:
// non-empty, at most 64 characters of latin letters, digits, '-' and '_'.
func ValidCompanyID(id string) bool {
	if id == "" || len(id) > maxCompanyIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func (v *DocumentValidator) validateTokenRequest(request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyID}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyID:
			if !ValidCompanyID(request.CompanyID) {
				return ErrInvalidCompanyID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateStatementRequest(request models.StatementRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPeriod, FieldFormat, FieldCurrency}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPeriod:
			if request.From.IsZero() || request.To.IsZero() || request.From.After(request.To) {
				return ErrInvalidPeriod
			}
		case FieldFormat:
			if !isValidFormat(request.Format) {
				return ErrInvalidFormat
			}
		case FieldCurrency:
			if !isCurrencyCode(request.CurrencyCode) {
				return ErrInvalidCurrency
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateReferenceRequest(request models.ReferenceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldReferenceType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				return ErrEmptyName
			}
		case FieldReferenceType:
			if request.ReferenceType != models.ReferenceTypeElectronic && request.ReferenceType != models.ReferenceTypePaper {
				return ErrInvalidReferenceType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateStatusChangeRequest(request models.StatusChangeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if _, ok := models.ParseLifecycleState(request.Status); !ok {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidFormat(format models.StatementFormat) bool {
	for _, f := range allowedFormats {
		if format == f {
			return true
		}
	}
	return false
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
