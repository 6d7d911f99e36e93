package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidEntityID   = errors.New("invalid entity ID")
	ErrInvalidEntityKind = errors.New("invalid entity kind")
)
