package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ctoup.com/devconnect/pkg/shared/repository/subentity"
)

const createProfile = `-- name: CreateProfile :one
INSERT INTO core_profiles (id, user_id, handle, company, website, location, status, bio, githubusername, skills, social)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

type CreateProfileParams struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"userId"`
	Handle         string           `json:"handle"`
	Company        string           `json:"company"`
	Website        string           `json:"website"`
	Location       string           `json:"location"`
	Status         string           `json:"status"`
	Bio            string           `json:"bio"`
	Githubusername string           `json:"githubusername"`
	Skills         []string         `json:"skills"`
	Social         subentity.Social `json:"social"`
}

func (q *Queries) CreateProfile(ctx context.Context, arg CreateProfileParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createProfile,
		arg.ID,
		arg.UserID,
		arg.Handle,
		arg.Company,
		arg.Website,
		arg.Location,
		arg.Status,
		arg.Bio,
		arg.Githubusername,
		arg.Skills,
		arg.Social,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateProfile = `-- name: UpdateProfile :one
UPDATE core_profiles
SET handle = $2, company = $3, website = $4, location = $5, status = $6, bio = $7,
    githubusername = $8, skills = $9, social = $10
WHERE user_id = $1
RETURNING id
`

type UpdateProfileParams struct {
	UserID         uuid.UUID        `json:"userId"`
	Handle         string           `json:"handle"`
	Company        string           `json:"company"`
	Website        string           `json:"website"`
	Location       string           `json:"location"`
	Status         string           `json:"status"`
	Bio            string           `json:"bio"`
	Githubusername string           `json:"githubusername"`
	Skills         []string         `json:"skills"`
	Social         subentity.Social `json:"social"`
}

func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, updateProfile,
		arg.UserID,
		arg.Handle,
		arg.Company,
		arg.Website,
		arg.Location,
		arg.Status,
		arg.Bio,
		arg.Githubusername,
		arg.Skills,
		arg.Social,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const profileColumns = `p.id, p.user_id, p.handle, p.company, p.website, p.location, p.status, p.bio,
       p.githubusername, p.skills, p.social, p.experience, p.education, p.date,
       u.name AS user_name, u.avatar AS user_avatar`

const getProfileByUserID = `-- name: GetProfileByUserID :one
SELECT ` + profileColumns + `
FROM core_profiles p JOIN core_users u ON u.id = p.user_id
WHERE p.user_id = $1 LIMIT 1
`

func (q *Queries) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (ProfileRow, error) {
	row := q.db.QueryRow(ctx, getProfileByUserID, userID)
	return scanProfileRow(row)
}

const getProfileByHandle = `-- name: GetProfileByHandle :one
SELECT ` + profileColumns + `
FROM core_profiles p JOIN core_users u ON u.id = p.user_id
WHERE p.handle = $1 LIMIT 1
`

func (q *Queries) GetProfileByHandle(ctx context.Context, handle string) (ProfileRow, error) {
	row := q.db.QueryRow(ctx, getProfileByHandle, handle)
	return scanProfileRow(row)
}

const listProfiles = `-- name: ListProfiles :many
SELECT ` + profileColumns + `
FROM core_profiles p JOIN core_users u ON u.id = p.user_id
ORDER BY p.date DESC
`

func (q *Queries) ListProfiles(ctx context.Context) ([]ProfileRow, error) {
	rows, err := q.db.Query(ctx, listProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProfileRow{}
	for rows.Next() {
		i, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanProfileRow(row pgx.Row) (ProfileRow, error) {
	var i ProfileRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Handle,
		&i.Company,
		&i.Website,
		&i.Location,
		&i.Status,
		&i.Bio,
		&i.Githubusername,
		&i.Skills,
		&i.Social,
		&i.Experience,
		&i.Education,
		&i.Date,
		&i.UserName,
		&i.UserAvatar,
	)
	return i, err
}

const lockProfileByUserID = `-- name: LockProfileByUserID :one
SELECT id, experience, education FROM core_profiles
WHERE user_id = $1
FOR UPDATE
`

type LockProfileByUserIDRow struct {
	ID         uuid.UUID              `json:"id"`
	Experience []subentity.Experience `json:"experience"`
	Education  []subentity.Education  `json:"education"`
}

func (q *Queries) LockProfileByUserID(ctx context.Context, userID uuid.UUID) (LockProfileByUserIDRow, error) {
	row := q.db.QueryRow(ctx, lockProfileByUserID, userID)
	var i LockProfileByUserIDRow
	err := row.Scan(&i.ID, &i.Experience, &i.Education)
	return i, err
}

const updateProfileExperience = `-- name: UpdateProfileExperience :exec
UPDATE core_profiles SET experience = $2 WHERE user_id = $1
`

type UpdateProfileExperienceParams struct {
	UserID     uuid.UUID              `json:"userId"`
	Experience []subentity.Experience `json:"experience"`
}

func (q *Queries) UpdateProfileExperience(ctx context.Context, arg UpdateProfileExperienceParams) error {
	_, err := q.db.Exec(ctx, updateProfileExperience, arg.UserID, arg.Experience)
	return err
}

const updateProfileEducation = `-- name: UpdateProfileEducation :exec
UPDATE core_profiles SET education = $2 WHERE user_id = $1
`

type UpdateProfileEducationParams struct {
	UserID    uuid.UUID             `json:"userId"`
	Education []subentity.Education `json:"education"`
}

func (q *Queries) UpdateProfileEducation(ctx context.Context, arg UpdateProfileEducationParams) error {
	_, err := q.db.Exec(ctx, updateProfileEducation, arg.UserID, arg.Education)
	return err
}

const deleteProfileByUserID = `-- name: DeleteProfileByUserID :execrows
DELETE FROM core_profiles WHERE user_id = $1
`

func (q *Queries) DeleteProfileByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProfileByUserID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
