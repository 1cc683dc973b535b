package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID                string             `bson:"_id,omitempty" json:"id"`
	Email             string             `bson:"email" json:"email"`
	Name              string             `bson:"name" json:"name"`
	PasswordHash      string             `bson:"password_hash" json:"-"`
	Role              UserRole           `bson:"role" json:"role"`
	IsActive          bool               `bson:"is_active" json:"is_active"`
	Location          *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	PatientProfile    *PatientProfile    `bson:"patient_profile,omitempty" json:"patient_profile,omitempty"`
	ResearcherProfile *ResearcherProfile `bson:"researcher_profile,omitempty" json:"researcher_profile,omitempty"`
	Favorites         []Favorite         `bson:"favorites,omitempty" json:"favorites,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRolePatient    UserRole = "patient"
	UserRoleResearcher UserRole = "researcher"
)

func DefaultRole() UserRole {
	return UserRolePatient
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude],
// the order MongoDB expects for 2dsphere indexes.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(longitude, latitude float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// PatientProfile holds patient-specific onboarding data. Only populated
// when the user's role is patient.
type PatientProfile struct {
	Condition        string   `bson:"condition" json:"condition"`
	ConditionFilters []string `bson:"condition_filters" json:"condition_filters"`
}

// ResearcherProfile holds researcher-specific onboarding data. Only
// populated when the user's role is researcher. All fields are optional.
type ResearcherProfile struct {
	Specialties       []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
	ResearchInterests []string `bson:"research_interests,omitempty" json:"research_interests,omitempty"`
	OrcidID           string   `bson:"orcid_id,omitempty" json:"orcid_id,omitempty"`
}

// FavoriteKind identifies which collection a favorite points into.
type FavoriteKind string

const (
	FavoriteKindTrial  FavoriteKind = "Trial"
	FavoriteKindExpert FavoriteKind = "Expert"
)

// Favorite is a weak reference to a trial or expert. It carries no
// ownership: a dangling RefID resolves to "not found" for that item,
// never an error for the whole read.
type Favorite struct {
	Kind  FavoriteKind `bson:"kind" json:"kind"`
	RefID string       `bson:"ref_id" json:"ref_id"`
}
