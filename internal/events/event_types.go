package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSurveyCreated  EventType = "survey_created"
	EventSurveyUpdated  EventType = "survey_updated"
	EventSurveyDeleted  EventType = "survey_deleted"
	EventSurveyRestored EventType = "survey_restored"
)

// AllSurveyEvents lists every mutation event; the statistics cache
// subscribes to all of them.
var AllSurveyEvents = []EventType{
	EventSurveyCreated,
	EventSurveyUpdated,
	EventSurveyDeleted,
	EventSurveyRestored,
}

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType `json:"type"`
	SurveyID  string    `json:"survey_id"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
