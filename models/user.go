// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns favorite links.
//
// The JSON shape mirrors the public user listing: Username is kept for
// storage and seeding only, while Password IS serialized. Exposing the
// password is a known gap that is kept for behavior parity with existing
// clients; a hardened API must drop it from the listing.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the natural login name of the user. Not serialized.
	Username string `json:"-"`

	// Name is the first name of the user.
	Name string `json:"name"`

	// Lastname is the family name of the user.
	Lastname string `json:"lastname"`

	// Email is the contact address. Uniqueness is not enforced by storage.
	Email string `json:"email"`

	// SubscriptionDate is the day the user subscribed.
	SubscriptionDate time.Time `json:"subscription_date"`

	// Password is stored and returned in plaintext.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return `"user"`
}
