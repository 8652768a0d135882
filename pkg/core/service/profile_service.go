package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ctoup.com/devconnect/pkg/core/db"
	"ctoup.com/devconnect/pkg/core/db/repository"
	"ctoup.com/devconnect/pkg/core/validation"
	"ctoup.com/devconnect/pkg/shared/event"
	"ctoup.com/devconnect/pkg/shared/fileservice"
	"ctoup.com/devconnect/pkg/shared/repository/subentity"
	"ctoup.com/devconnect/pkg/shared/util"
)

const profilesHandleKey = "core_profiles_handle_key"

// ProfileUser is the populated owner of a profile.
type ProfileUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

type Profile struct {
	ID             uuid.UUID              `json:"id"`
	User           ProfileUser            `json:"user"`
	Handle         string                 `json:"handle"`
	Company        string                 `json:"company,omitempty"`
	Website        string                 `json:"website,omitempty"`
	Location       string                 `json:"location,omitempty"`
	Status         string                 `json:"status"`
	Bio            string                 `json:"bio,omitempty"`
	Githubusername string                 `json:"githubusername,omitempty"`
	Skills         []string               `json:"skills"`
	Social         subentity.Social       `json:"social,omitempty"`
	Experience     []subentity.Experience `json:"experience"`
	Education      []subentity.Education  `json:"education"`
	Date           time.Time              `json:"date"`
}

func toProfile(row repository.ProfileRow) Profile {
	return Profile{
		ID:             row.ID,
		User:           ProfileUser{ID: row.UserID, Name: row.UserName, Avatar: row.UserAvatar},
		Handle:         row.Handle,
		Company:        row.Company,
		Website:        row.Website,
		Location:       row.Location,
		Status:         row.Status,
		Bio:            row.Bio,
		Githubusername: row.Githubusername,
		Skills:         util.GetNotNilArray(row.Skills),
		Social:         row.Social,
		Experience:     util.GetNotNilArray(row.Experience),
		Education:      util.GetNotNilArray(row.Education),
		Date:           row.Date,
	}
}

type ProfileService struct {
	store  db.Store
	events event.Publisher
	files  *fileservice.FileService
}

// NewProfileService builds the profile use cases. files may be nil.
func NewProfileService(store db.Store, events event.Publisher, files *fileservice.FileService) *ProfileService {
	if events == nil {
		events = event.NoopPublisher{}
	}
	return &ProfileService{store: store, events: events, files: files}
}

func (s *ProfileService) profileOf(ctx context.Context, q repository.Querier, userID uuid.UUID) (Profile, error) {
	row, err := q.GetProfileByUserID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return Profile{}, NewNotFoundError("noprofile", MsgNoProfile, err)
		}
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return toProfile(row), nil
}

func (s *ProfileService) GetCurrent(ctx context.Context, userID uuid.UUID) (Profile, error) {
	return s.profileOf(ctx, s.store, userID)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	return s.profileOf(ctx, s.store, userID)
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (Profile, error) {
	row, err := s.store.GetProfileByHandle(ctx, handle)
	if err != nil {
		if isNoRows(err) {
			return Profile{}, NewNotFoundError("noprofile", MsgNoProfile, err)
		}
		return Profile{}, fmt.Errorf("get profile by handle: %w", err)
	}
	return toProfile(row), nil
}

func (s *ProfileService) List(ctx context.Context) ([]Profile, error) {
	rows, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if len(rows) == 0 {
		return nil, NewNotFoundError("noprofile", MsgNoProfiles, nil)
	}
	profiles := make([]Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, toProfile(row))
	}
	return profiles, nil
}

func socialFrom(in validation.ProfileInput) subentity.Social {
	links := in.SocialLinks()
	social := subentity.Social{}
	for _, platform := range subentity.SocialPlatforms {
		if link := links[platform]; link != "" {
			social[platform] = link
		}
	}
	return social
}

// Upsert creates the caller's profile or updates it in place. A handle can only belong to one user.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, in validation.ProfileInput) (Profile, error) {
	if errs, ok := validation.ValidateProfileInput(in); !ok {
		return Profile{}, &FieldError{Fields: errs}
	}

	params := repository.UpdateProfileParams{
		UserID:         userID,
		Handle:         trimmed(in.Handle),
		Company:        in.Company,
		Website:        trimmed(in.Website),
		Location:       in.Location,
		Status:         trimmed(in.Status),
		Bio:            in.Bio,
		Githubusername: in.Githubusername,
		Skills:         util.SplitAndTrim(in.Skills),
		Social:         socialFrom(in),
	}

	var profile Profile
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		owner, err := q.GetProfileByHandle(ctx, params.Handle)
		switch {
		case err == nil && owner.UserID != userID:
			return NewFieldError("handle", MsgHandleExists)
		case err != nil && !isNoRows(err):
			return fmt.Errorf("check handle: %w", err)
		}

		if _, err := q.LockProfileByUserID(ctx, userID); err != nil {
			if !isNoRows(err) {
				return fmt.Errorf("lock profile: %w", err)
			}
			if _, err := q.CreateProfile(ctx, repository.CreateProfileParams{
				ID:             uuid.New(),
				UserID:         params.UserID,
				Handle:         params.Handle,
				Company:        params.Company,
				Website:        params.Website,
				Location:       params.Location,
				Status:         params.Status,
				Bio:            params.Bio,
				Githubusername: params.Githubusername,
				Skills:         params.Skills,
				Social:         params.Social,
			}); err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
		} else if _, err := q.UpdateProfile(ctx, params); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		profile, err = s.profileOf(ctx, q, userID)
		return err
	})
	if err != nil {
		if isUniqueViolation(err, profilesHandleKey) {
			return Profile{}, NewFieldError("handle", MsgHandleExists)
		}
		return Profile{}, err
	}
	return profile, nil
}

// editProfile locks the caller's profile, applies fn and returns the refreshed profile.
func (s *ProfileService) editProfile(ctx context.Context, userID uuid.UUID, fn func(repository.Querier, repository.LockProfileByUserIDRow) error) (Profile, error) {
	var profile Profile
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		row, err := q.LockProfileByUserID(ctx, userID)
		if err != nil {
			if isNoRows(err) {
				return NewNotFoundError("noprofile", MsgNoProfile, err)
			}
			return fmt.Errorf("lock profile: %w", err)
		}
		if err := fn(q, row); err != nil {
			return err
		}
		profile, err = s.profileOf(ctx, q, userID)
		return err
	})
	return profile, err
}

func parseRange(from, to string) (subentity.Date, *subentity.Date, error) {
	start, err := subentity.ParseDate(trimmed(from))
	if err != nil {
		return subentity.Date{}, nil, err
	}
	if trimmed(to) == "" {
		return start, nil, nil
	}
	end, err := subentity.ParseDate(trimmed(to))
	if err != nil {
		return subentity.Date{}, nil, err
	}
	return start, &end, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, in validation.ExperienceInput) (Profile, error) {
	if errs, ok := validation.ValidateExperienceInput(in); !ok {
		return Profile{}, &FieldError{Fields: errs}
	}
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return Profile{}, NewFieldError("from", err.Error())
	}
	entry := subentity.Experience{
		ID:          uuid.New(),
		Title:       trimmed(in.Title),
		Company:     trimmed(in.Company),
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	return s.editProfile(ctx, userID, func(q repository.Querier, row repository.LockProfileByUserIDRow) error {
		return q.UpdateProfileExperience(ctx, repository.UpdateProfileExperienceParams{
			UserID:     userID,
			Experience: subentity.Prepend(row.Experience, entry),
		})
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID uuid.UUID) (Profile, error) {
	return s.editProfile(ctx, userID, func(q repository.Querier, row repository.LockProfileByUserIDRow) error {
		remaining, ok := subentity.RemoveByID(row.Experience, experienceID)
		if !ok {
			return NewNotFoundError("experiencenotfound", MsgExperienceNotFound, nil)
		}
		return q.UpdateProfileExperience(ctx, repository.UpdateProfileExperienceParams{
			UserID:     userID,
			Experience: remaining,
		})
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, in validation.EducationInput) (Profile, error) {
	if errs, ok := validation.ValidateEducationInput(in); !ok {
		return Profile{}, &FieldError{Fields: errs}
	}
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return Profile{}, NewFieldError("from", err.Error())
	}
	entry := subentity.Education{
		ID:           uuid.New(),
		School:       trimmed(in.School),
		Degree:       trimmed(in.Degree),
		FieldOfStudy: trimmed(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	return s.editProfile(ctx, userID, func(q repository.Querier, row repository.LockProfileByUserIDRow) error {
		return q.UpdateProfileEducation(ctx, repository.UpdateProfileEducationParams{
			UserID:    userID,
			Education: subentity.Prepend(row.Education, entry),
		})
	})
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID uuid.UUID) (Profile, error) {
	return s.editProfile(ctx, userID, func(q repository.Querier, row repository.LockProfileByUserIDRow) error {
		remaining, ok := subentity.RemoveByID(row.Education, educationID)
		if !ok {
			return NewNotFoundError("educationnotfound", MsgEducationNotFound, nil)
		}
		return q.UpdateProfileEducation(ctx, repository.UpdateProfileEducationParams{
			UserID:    userID,
			Education: remaining,
		})
	})
}

// DeleteAccount removes the profile (if any) and the user in one transaction.
// Posts written by the user are kept.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		if _, err := q.DeleteProfileByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if _, err := q.DeleteUser(ctx, userID); err != nil {
			if isNoRows(err) {
				return NewNotFoundError("email", MsgUserNotFound, err)
			}
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.files != nil {
		if err := s.files.DeleteFile(ctx, AvatarFilename(userID)); err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("cannot delete avatar")
		}
	}
	s.events.Publish(ctx, event.NewEvent(event.ProfileDeleted, userID, userID, "account deleted"))
	return nil
}
