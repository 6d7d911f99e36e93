// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// EntityKind identifies one of the catalog entity types that can be
// added to a user's favorites.
type EntityKind string

const (
	// KindCharacter refers to entries of the characters table.
	KindCharacter EntityKind = "character"
	// KindPlanet refers to entries of the planets table.
	KindPlanet EntityKind = "planet"
	// KindVehicle refers to entries of the vehicles table.
	KindVehicle EntityKind = "vehicle"
)

// ErrUnknownEntityKind is returned by [ParseEntityKind] for any value that
// is not one of the supported kinds.
var ErrUnknownEntityKind = errors.New("unknown entity kind")

// EntityKinds lists every supported kind in the order favorites are grouped.
var EntityKinds = []EntityKind{KindCharacter, KindPlanet, KindVehicle}

// ParseEntityKind converts a raw path segment (e.g. "planet") into an
// [EntityKind]. Matching is exact and case-sensitive.
func ParseEntityKind(raw string) (EntityKind, error) {
	kind := EntityKind(raw)
	if !kind.Valid() {
		return "", ErrUnknownEntityKind
	}

	return kind, nil
}

// Valid reports whether k is one of the supported kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindCharacter, KindPlanet, KindVehicle:
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (k EntityKind) String() string {
	return string(k)
}

// Title returns the kind with an upper-case first letter ("Character"),
// used when composing response messages.
func (k EntityKind) Title() string {
	if k == "" {
		return ""
	}

	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
