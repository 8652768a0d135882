package repository

import (
	"time"

	"github.com/google/uuid"

	"ctoup.com/devconnect/pkg/shared/repository/subentity"
)

type CoreUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Avatar   string    `json:"avatar"`
	Date     time.Time `json:"date"`
}

type CoreProfile struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"userId"`
	Handle         string                 `json:"handle"`
	Company        string                 `json:"company"`
	Website        string                 `json:"website"`
	Location       string                 `json:"location"`
	Status         string                 `json:"status"`
	Bio            string                 `json:"bio"`
	Githubusername string                 `json:"githubusername"`
	Skills         []string               `json:"skills"`
	Social         subentity.Social       `json:"social"`
	Experience     []subentity.Experience `json:"experience"`
	Education      []subentity.Education  `json:"education"`
	Date           time.Time              `json:"date"`
}

// ProfileRow is a profile joined with the public fields of its user.
type ProfileRow struct {
	CoreProfile
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
}

type CorePost struct {
	ID       uuid.UUID           `json:"id"`
	UserID   uuid.UUID           `json:"user"`
	Text     string              `json:"text"`
	Name     string              `json:"name"`
	Avatar   string              `json:"avatar"`
	Likes    []subentity.Like    `json:"likes"`
	Comments []subentity.Comment `json:"comments"`
	Date     time.Time           `json:"date"`
}
