package event

import (
	"time"

	"github.com/google/uuid"
)

// Subjects published by the API.
const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	PostLiked      = "post.liked"
	PostUnliked    = "post.unliked"
	PostCommented  = "post.commented"
	ProfileDeleted = "profile.deleted"
)

type Event struct {
	EventType  string    `json:"eventType"`
	Message    string    `json:"message"`
	UserID     uuid.UUID `json:"userId"`
	ResourceID uuid.UUID `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(eventType string, userID, resourceID uuid.UUID, message string) Event {
	return Event{
		EventType:  eventType,
		Message:    message,
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}
}
