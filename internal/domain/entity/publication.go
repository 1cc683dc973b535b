package entity

// Publication is a reference record for a research publication, keyed by DOI.
type Publication struct {
	ID        string   `bson:"_id,omitempty" json:"id"`
	DOI       string   `bson:"doi" json:"doi"`
	Title     string   `bson:"title" json:"title"`
	Journal   string   `bson:"journal,omitempty" json:"journal,omitempty"`
	Authors   []string `bson:"authors,omitempty" json:"authors,omitempty"`
	Abstract  string   `bson:"abstract,omitempty" json:"abstract,omitempty"`
	AISummary string   `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}
