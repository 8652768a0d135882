package subentity

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a user liked a post. A user appears at most once per post.
type Like struct {
	ID   uuid.UUID `json:"id"`
	User uuid.UUID `json:"user"`
}

func (l Like) EntryID() uuid.UUID { return l.ID }

type Comment struct {
	ID     uuid.UUID `json:"id"`
	User   uuid.UUID `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

func (c Comment) EntryID() uuid.UUID { return c.ID }
