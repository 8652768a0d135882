package repository

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreatePost(ctx context.Context, arg CreatePostParams) (CorePost, error)
	CreateProfile(ctx context.Context, arg CreateProfileParams) (uuid.UUID, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (CoreUser, error)
	DeletePost(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	DeleteProfileByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (CorePost, error)
	GetProfileByHandle(ctx context.Context, handle string) (ProfileRow, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (ProfileRow, error)
	GetUserByEmail(ctx context.Context, email string) (CoreUser, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (CoreUser, error)
	ListPosts(ctx context.Context, arg ListPostsParams) ([]CorePost, error)
	ListProfiles(ctx context.Context) ([]ProfileRow, error)
	LockPostByID(ctx context.Context, id uuid.UUID) (CorePost, error)
	LockProfileByUserID(ctx context.Context, userID uuid.UUID) (LockProfileByUserIDRow, error)
	UpdatePostComments(ctx context.Context, arg UpdatePostCommentsParams) (CorePost, error)
	UpdatePostLikes(ctx context.Context, arg UpdatePostLikesParams) (CorePost, error)
	UpdateProfile(ctx context.Context, arg UpdateProfileParams) (uuid.UUID, error)
	UpdateProfileEducation(ctx context.Context, arg UpdateProfileEducationParams) error
	UpdateProfileExperience(ctx context.Context, arg UpdateProfileExperienceParams) error
	UpdateUserAvatar(ctx context.Context, arg UpdateUserAvatarParams) (CoreUser, error)
}

var _ Querier = (*Queries)(nil)
