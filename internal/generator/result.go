package generator

import "github.com/google/uuid"

// TopicSummary describes one topic created by a generation request.
type TopicSummary struct {
	ID          uuid.UUID
	Title       string
	Description string
}
