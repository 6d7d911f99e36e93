package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUserNotFound      = errors.New("user not found")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("entity is already a favorite")
	ErrInvalidEntityKind = errors.New("invalid entity kind")
)
