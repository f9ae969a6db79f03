package model

import "time"

// Preferences are the per-team settings that choose which entry list to load
type Preferences struct {
	TeamID    string            `json:"teamId" bson:"teamId"`
	Variants  map[string]string `json:"variants" bson:"variants"` // questionnaire type -> variant
	Scheme    string            `json:"scheme" bson:"scheme"`
	UpdatedAt time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// VariantFor returns the saved variant for a questionnaire type, or ""
func (p *Preferences) VariantFor(typ string) string {
	if p == nil || p.Variants == nil {
		return ""
	}
	return p.Variants[typ]
}
