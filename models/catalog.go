// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Character is a catalog entry describing a person or droid.
type Character struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	EyeColor  string `json:"eye_color"`
	HairColor string `json:"hair_color"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}

// Planet is a catalog entry describing a planet.
type Planet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Diameter   int    `json:"diameter"`
	Terrain    string `json:"terrain"`
	Population int64  `json:"population"`
}

// TableName returns the name of the database table
// associated with the Planet model.
func (p Planet) TableName() string {
	return "planets"
}

// Vehicle is a catalog entry describing a vehicle.
type Vehicle struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Model      string `json:"model"`
	Crew       int    `json:"crew"`
	Passengers int    `json:"passengers"`
}

// TableName returns the name of the database table
// associated with the Vehicle model.
func (v Vehicle) TableName() string {
	return "vehicles"
}
