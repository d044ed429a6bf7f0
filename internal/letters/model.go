package letters

import (
	"encoding/json"
	"strings"
	"time"
)

// CoverLetterDeck is a generated cover-letter presentation attached to a
// resume. Content is either a JSON array of exactly four slides or a legacy
// free-text letter; Slides distinguishes the two.
type CoverLetterDeck struct {
	ID        string
	ResumeID  string
	Content   string
	CreatedAt time.Time
}

// Slide is one pitch-deck slide.
type Slide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

const slideCount = 4

// Slides parses the deck content. Malformed JSON, a non-array payload or a
// wrong slide count all yield nil rather than an error: a broken deck must
// never take the page down with it.
func (d CoverLetterDeck) Slides() []Slide {
	raw := strings.TrimSpace(d.Content)
	if raw == "" || !strings.HasPrefix(raw, "[") {
		return nil
	}
	var slides []Slide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		return nil
	}
	if len(slides) != slideCount {
		return nil
	}
	return slides
}
