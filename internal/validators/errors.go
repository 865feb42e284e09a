package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCompanyID     = errors.New("invalid company id")
	ErrEmptyTitle           = errors.New("title is required")
	ErrInvalidPeriod        = errors.New("period start must not be after its end")
	ErrInvalidFormat        = errors.New("invalid statement format")
	ErrInvalidCurrency      = errors.New("currency must be a three letter code")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidReferenceType = errors.New("invalid reference type")
	ErrInvalidStatus        = errors.New("invalid status")
)
