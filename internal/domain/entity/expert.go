package entity

// Expert is a public profile record. UserID is a weak reference to the
// backing User account and may be empty for experts without one.
type Expert struct {
	ID                 string   `bson:"_id,omitempty" json:"id"`
	Name               string   `bson:"name" json:"name"`
	PrimaryAffiliation string   `bson:"primary_affiliation,omitempty" json:"primary_affiliation,omitempty"`
	Specialties        []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
	UserID             string   `bson:"user_id,omitempty" json:"user_id,omitempty"`
}
