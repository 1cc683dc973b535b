package dto

import (
	"github.com/natembeza/curalink/internal/domain/entity"
)

// LocationDTO carries a longitude/latitude pair in request payloads.
// The fields are pointers so a zero coordinate (equator, prime meridian)
// still satisfies the required check.
type LocationDTO struct {
	Longitude *float64 `json:"longitude" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
}

func (l *LocationDTO) ToGeoPoint() *entity.GeoPoint {
	return entity.NewGeoPoint(*l.Longitude, *l.Latitude)
}

// OnboardPatientRequest is the payload for PUT /user/patient/onboard.
type OnboardPatientRequest struct {
	ConditionText string       `json:"conditionText" binding:"required"`
	Location      *LocationDTO `json:"location" binding:"required"`
}

// OnboardResearcherRequest is the payload for PUT /user/researcher/onboard.
// Everything is optional on this path.
type OnboardResearcherRequest struct {
	OrcidID           string       `json:"orcidID"`
	Location          *LocationDTO `json:"location"`
	Specialties       []string     `json:"specialties"`
	ResearchInterests []string     `json:"researchInterests"`
}

// DetectLocationRequest is the payload for POST /user/location/detect.
// Pointer coordinates for the same reason as LocationDTO.
type DetectLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// FavoriteRequest adds or removes a weak reference from the user's favorites.
type FavoriteRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=Trial Expert"`
	RefID string `json:"refId" binding:"required"`
}

// OnboardedUser is the trimmed user view returned by the onboarding routes.
// The password hash is structurally absent, not just tag-hidden.
type OnboardedUser struct {
	ID                string                    `json:"id"`
	Email             string                    `json:"email"`
	Role              string                    `json:"role"`
	Location          *entity.GeoPoint          `json:"location,omitempty"`
	PatientProfile    *entity.PatientProfile    `json:"patientProfile,omitempty"`
	ResearcherProfile *entity.ResearcherProfile `json:"researcherProfile,omitempty"`
}

// OnboardResponse is returned by both onboarding routes.
type OnboardResponse struct {
	Message string        `json:"message"`
	User    OnboardedUser `json:"user"`
}

// ToOnboardedUser converts an entity.User to its onboarding view.
func ToOnboardedUser(user entity.User) OnboardedUser {
	return OnboardedUser{
		ID:                user.ID,
		Email:             user.Email,
		Role:              string(user.Role),
		Location:          user.Location,
		PatientProfile:    user.PatientProfile,
		ResearcherProfile: user.ResearcherProfile,
	}
}
