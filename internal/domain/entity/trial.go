package entity

// ClinicalTrial is a reference record for a trial fetched from an external
// registry. TrialID is the registry identifier (e.g. an NCT number) and is
// unique per trial.
type ClinicalTrial struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	TrialID     string `bson:"trial_id" json:"trial_id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Phase       string `bson:"phase,omitempty" json:"phase,omitempty"`
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
	AISummary   string `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}
