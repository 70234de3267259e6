package models

import "strings"

// Placeholder values substituted for missing candidate fields before an
// answer leaves the collector
const (
	PlaceholderScene    = "unknown"
	PlaceholderQuestion = "no question"
	PlaceholderAnswer   = "no answer"

	// AnonymousPlayer is used when no identity can be resolved
	AnonymousPlayer = "Anonymous"

	// TimestampLayout matches JavaScript's Date.toISOString
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Answer is one player's response to one in-narrative question, as sent on the wire
type Answer struct {
	// PlayerName is the resolved player identity
	PlayerName string `json:"playerName"`

	// PhoneNumber is optional and empty when unresolved
	PhoneNumber string `json:"phoneNumber"`

	// Scene is the narrative location at the time of the answer
	Scene string `json:"scene"`

	// Question is the question text or identifier
	Question string `json:"question"`

	// Answer is the raw selected answer text
	Answer string `json:"answer"`

	// Timestamp is the ISO-8601 creation time from the client clock
	Timestamp string `json:"timestamp"`
}

// Candidate is an answer-shaped payload found inside an engine record
type Candidate struct {
	Scene    string
	Question string
	Answer   string
}

// Normalize replaces empty fields with their placeholders
func (c Candidate) Normalize() Candidate {
	if strings.TrimSpace(c.Scene) == "" {
		c.Scene = PlaceholderScene
	}
	if strings.TrimSpace(c.Question) == "" {
		c.Question = PlaceholderQuestion
	}
	if strings.TrimSpace(c.Answer) == "" {
		c.Answer = PlaceholderAnswer
	}
	return c
}

// DedupKey identifies a repeated observation of the same selection
func (c Candidate) DedupKey() string {
	return c.Scene + "|" + c.Question + "|" + c.Answer
}
