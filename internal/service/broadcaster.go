package service

// Dashboard event types
const (
	EventCandidateCreated  = "candidate_created"
	EventCandidateUpdated  = "candidate_updated"
	EventDuplicatesRemoved = "duplicates_removed"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	Broadcast(msgType string, payload interface{})
}
