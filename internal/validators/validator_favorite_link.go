package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-holocron/models"
)

const (
	FieldKind     = "kind"
	FieldUserID   = "user_id"
	FieldEntityID = "entity_id"
)

// FavoriteLinkValidator checks favorite links before they reach storage.
type FavoriteLinkValidator struct {
}

func NewFavoriteLinkValidator() Validator {
	return &FavoriteLinkValidator{}
}

// Validate accepts a models.FavoriteLink (or a pointer to one). Without
// fields every field is checked.
func (v *FavoriteLinkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FavoriteLink:
		return v.validateFavoriteLink(ctx, value, fields...)
	case *models.FavoriteLink:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFavoriteLink(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FavoriteLinkValidator) validateFavoriteLink(_ context.Context, link models.FavoriteLink, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldUserID, FieldEntityID}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if !link.Kind.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidEntityKind, link.Kind)
			}
		case FieldUserID:
			if link.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntityID:
			if link.EntityID <= 0 {
				return ErrInvalidEntityID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
