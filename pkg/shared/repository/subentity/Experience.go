package subentity

import "github.com/google/uuid"

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        Date      `json:"from"`
	To          *Date     `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

func (e Experience) EntryID() uuid.UUID { return e.ID }
