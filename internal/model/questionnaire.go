package model

import (
	"time"

	"sarrisk/internal/strategy"
)

// ItemPrompt is the display text of one questionnaire item
type ItemPrompt struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
}

// Questionnaire is the static definition of one questionnaire type in one
// variant (language). Item order is significant.
type Questionnaire struct {
	ID        string       `json:"id,omitempty" bson:"_id,omitempty"`
	Type      string       `json:"type" bson:"type"`
	Variant   string       `json:"variant" bson:"variant"`
	Title     string       `json:"title" bson:"title"`
	Items     []ItemPrompt `json:"items" bson:"items"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// Entries returns a fresh, unscored entry list for the questionnaire
func (q *Questionnaire) Entries() []strategy.Entry {
	entries := make([]strategy.Entry, len(q.Items))
	for i, it := range q.Items {
		entries[i] = strategy.Entry{
			Title:    it.Title,
			Subtitle: it.Subtitle,
		}
	}
	return entries
}
