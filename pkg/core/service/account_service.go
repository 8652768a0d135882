package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ctoup.com/devconnect/pkg/core/db"
	"ctoup.com/devconnect/pkg/core/db/repository"
	"ctoup.com/devconnect/pkg/core/validation"
	"ctoup.com/devconnect/pkg/shared/auth"
	"ctoup.com/devconnect/pkg/shared/fileservice"
	"ctoup.com/devconnect/pkg/shared/util"
)

const usersEmailKey = "core_users_email_key"

// AccountService covers registration, login and the signed in user's account.
type AccountService struct {
	store    db.Store
	tokens   *auth.TokenIssuer
	hasher   auth.PasswordHasher
	denylist auth.Denylist
	files    *fileservice.FileService
	limiter  *RateLimiter
}

// NewAccountService wires the account use cases. denylist, files and limiter may be nil.
func NewAccountService(
	store db.Store,
	tokens *auth.TokenIssuer,
	hasher auth.PasswordHasher,
	denylist auth.Denylist,
	files *fileservice.FileService,
	limiter *RateLimiter,
) *AccountService {
	return &AccountService{
		store:    store,
		tokens:   tokens,
		hasher:   hasher,
		denylist: denylist,
		files:    files,
		limiter:  limiter,
	}
}

// Gravatar returns the avatar URL of an email: 200px, rated pg, mystery-man fallback.
func Gravatar(email string) string {
	sum := md5.Sum([]byte(util.NormalizeEmail(email)))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}

func (s *AccountService) Register(ctx context.Context, in validation.RegisterInput) (repository.CoreUser, error) {
	if errs, ok := validation.ValidateRegisterInput(in); !ok {
		return repository.CoreUser{}, &FieldError{Fields: errs}
	}
	email := util.NormalizeEmail(in.Email)

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return repository.CoreUser{}, NewFieldError("email", MsgEmailExists)
	}
	if !isNoRows(err) {
		return repository.CoreUser{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return repository.CoreUser{}, err
	}
	user, err := s.store.CreateUser(ctx, repository.CreateUserParams{
		ID:       uuid.New(),
		Name:     in.Name,
		Email:    email,
		Password: hash,
		Avatar:   Gravatar(email),
	})
	if err != nil {
		if isUniqueViolation(err, usersEmailKey) {
			return repository.CoreUser{}, NewFieldError("email", MsgEmailExists)
		}
		return repository.CoreUser{}, fmt.Errorf("create user: %w", err)
	}
	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login checks the credentials and returns "Bearer <jwt>".
// clientKey identifies the caller for the attempt limiter.
func (s *AccountService) Login(ctx context.Context, clientKey string, in validation.LoginInput) (string, error) {
	if s.limiter != nil {
		if ok, retryAfter := s.limiter.Reserve(clientKey); !ok {
			return "", &RateLimitError{RetryAfter: retryAfter}
		}
	}
	if errs, ok := validation.ValidateLoginInput(in); !ok {
		return "", &FieldError{Fields: errs}
	}

	user, err := s.store.GetUserByEmail(ctx, util.NormalizeEmail(in.Email))
	if err != nil {
		if isNoRows(err) {
			return "", NewNotFoundError("email", MsgUserNotFound, err)
		}
		return "", fmt.Errorf("lookup user by email: %w", err)
	}
	if err := s.hasher.Check(user.Password, in.Password); err != nil {
		return "", NewFieldError("password", MsgPasswordIncorrect)
	}

	token, _, err := s.tokens.Issue(auth.Identity{ID: user.ID, Name: user.Name, Avatar: user.Avatar})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return auth.BearerPrefix + token, nil
}

// Authenticate resolves an Authorization header to the claims of a live token whose user still exists.
func (s *AccountService) Authenticate(ctx context.Context, header string) (*auth.Claims, error) {
	raw, err := auth.ExtractBearerToken(header)
	if err != nil {
		return nil, err
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}
	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, claims.RegisteredClaims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token denylist: %w", err)
		}
		if revoked {
			return nil, auth.NewAuthError(auth.ErrorCodeTokenRevoked, "token revoked", nil)
		}
	}
	if _, err := s.store.GetUserByID(ctx, claims.Identity.ID); err != nil {
		if isNoRows(err) {
			return nil, auth.NewAuthError(auth.ErrorCodeUserNotFound, "user no longer exists", err)
		}
		return nil, fmt.Errorf("lookup token user: %w", err)
	}
	return claims, nil
}

func (s *AccountService) Current(ctx context.Context, userID uuid.UUID) (repository.CoreUser, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return repository.CoreUser{}, NewNotFoundError("email", MsgUserNotFound, err)
		}
		return repository.CoreUser{}, err
	}
	return user, nil
}

// Logout revokes the token until it would have expired anyway. Without a denylist it does nothing.
func (s *AccountService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.denylist == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.RegisteredClaims.ID, claims.ExpiresAt.Time)
}

var ErrNoFileStorage = errors.New("avatar storage is not configured")

func AvatarFilename(userID uuid.UUID) string {
	return userID.String() + ".jpg"
}

func AvatarURL(userID uuid.UUID) string {
	return "/api/users/avatar/" + userID.String()
}

func (s *AccountService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (repository.CoreUser, error) {
	if s.files == nil {
		return repository.CoreUser{}, ErrNoFileStorage
	}
	if err := s.files.SaveFile(ctx, data, AvatarFilename(userID), contentType); err != nil {
		return repository.CoreUser{}, err
	}
	user, err := s.store.UpdateUserAvatar(ctx, repository.UpdateUserAvatarParams{
		ID:     userID,
		Avatar: AvatarURL(userID),
	})
	if err != nil {
		if isNoRows(err) {
			return repository.CoreUser{}, NewNotFoundError("email", MsgUserNotFound, err)
		}
		return repository.CoreUser{}, fmt.Errorf("update avatar: %w", err)
	}
	return user, nil
}

// ServeAvatar streams the stored avatar of userID to c.
func (s *AccountService) ServeAvatar(c *gin.Context, userID uuid.UUID) error {
	if s.files == nil {
		return ErrNoFileStorage
	}
	return s.files.GetFile(c, AvatarFilename(userID))
}
