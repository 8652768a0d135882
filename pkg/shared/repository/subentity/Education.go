package subentity

import "github.com/google/uuid"

type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         Date      `json:"from"`
	To           *Date     `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}

func (e Education) EntryID() uuid.UUID { return e.ID }
