package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ctoup.com/devconnect/pkg/core/db"
	"ctoup.com/devconnect/pkg/core/db/repository"
)

// MemoryStore is an in-process db.Store with the same error behaviour as Postgres:
// pgx.ErrNoRows for missing rows and unique_violation for duplicate emails and handles.
// Transactions are serialized and rolled back by restoring a snapshot.
type MemoryStore struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	users    map[uuid.UUID]repository.CoreUser
	profiles map[uuid.UUID]repository.CoreProfile // keyed by user id
	posts    map[uuid.UUID]repository.CorePost
	clock    time.Time
	err      error
	txCount  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    map[uuid.UUID]repository.CoreUser{},
		profiles: map[uuid.UUID]repository.CoreProfile{},
		posts:    map[uuid.UUID]repository.CorePost{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ db.Store = (*MemoryStore)(nil)

// FailWith makes every following call return err. Pass nil to recover.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Transactions returns how many transactions were committed.
func (s *MemoryStore) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

// tick returns strictly increasing timestamps so ordering by date is deterministic.
func (s *MemoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type snapshot struct {
	users    map[uuid.UUID]repository.CoreUser
	profiles map[uuid.UUID]repository.CoreProfile
	posts    map[uuid.UUID]repository.CorePost
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (s *MemoryStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	saved := snapshot{users: copyMap(s.users), profiles: copyMap(s.profiles), posts: copyMap(s.posts)}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users, s.profiles, s.posts = saved.users, saved.profiles, saved.posts
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.txCount++
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

// users

func (s *MemoryStore) CreateUser(ctx context.Context, arg repository.CreateUserParams) (repository.CoreUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CoreUser{}, s.err
	}
	for _, u := range s.users {
		if u.Email == arg.Email {
			return repository.CoreUser{}, uniqueViolation("core_users_email_key")
		}
	}
	user := repository.CoreUser{
		ID:       arg.ID,
		Name:     arg.Name,
		Email:    arg.Email,
		Password: arg.Password,
		Avatar:   arg.Avatar,
		Date:     s.tick(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id uuid.UUID) (repository.CoreUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CoreUser{}, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return repository.CoreUser{}, pgx.ErrNoRows
	}
	return user, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (repository.CoreUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CoreUser{}, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.CoreUser{}, pgx.ErrNoRows
}

func (s *MemoryStore) UpdateUserAvatar(ctx context.Context, arg repository.UpdateUserAvatarParams) (repository.CoreUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CoreUser{}, s.err
	}
	user, ok := s.users[arg.ID]
	if !ok {
		return repository.CoreUser{}, pgx.ErrNoRows
	}
	user.Avatar = arg.Avatar
	s.users[arg.ID] = user
	return user, nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	if _, ok := s.users[id]; !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	delete(s.users, id)
	delete(s.profiles, id)
	return id, nil
}

// profiles

func (s *MemoryStore) row(p repository.CoreProfile) repository.ProfileRow {
	user := s.users[p.UserID]
	return repository.ProfileRow{CoreProfile: p, UserName: user.Name, UserAvatar: user.Avatar}
}

func (s *MemoryStore) handleTaken(handle string, userID uuid.UUID) bool {
	for _, p := range s.profiles {
		if p.Handle == handle && p.UserID != userID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) CreateProfile(ctx context.Context, arg repository.CreateProfileParams) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	if _, ok := s.profiles[arg.UserID]; ok {
		return uuid.Nil, uniqueViolation("core_profiles_user_id_key")
	}
	if s.handleTaken(arg.Handle, arg.UserID) {
		return uuid.Nil, uniqueViolation("core_profiles_handle_key")
	}
	s.profiles[arg.UserID] = repository.CoreProfile{
		ID:             arg.ID,
		UserID:         arg.UserID,
		Handle:         arg.Handle,
		Company:        arg.Company,
		Website:        arg.Website,
		Location:       arg.Location,
		Status:         arg.Status,
		Bio:            arg.Bio,
		Githubusername: arg.Githubusername,
		Skills:         arg.Skills,
		Social:         arg.Social,
		Date:           s.tick(),
	}
	return arg.ID, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, arg repository.UpdateProfileParams) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	p, ok := s.profiles[arg.UserID]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	if s.handleTaken(arg.Handle, arg.UserID) {
		return uuid.Nil, uniqueViolation("core_profiles_handle_key")
	}
	p.Handle = arg.Handle
	p.Company = arg.Company
	p.Website = arg.Website
	p.Location = arg.Location
	p.Status = arg.Status
	p.Bio = arg.Bio
	p.Githubusername = arg.Githubusername
	p.Skills = arg.Skills
	p.Social = arg.Social
	s.profiles[arg.UserID] = p
	return p.ID, nil
}

func (s *MemoryStore) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (repository.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.ProfileRow{}, s.err
	}
	p, ok := s.profiles[userID]
	if !ok {
		return repository.ProfileRow{}, pgx.ErrNoRows
	}
	return s.row(p), nil
}

func (s *MemoryStore) GetProfileByHandle(ctx context.Context, handle string) (repository.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.ProfileRow{}, s.err
	}
	for _, p := range s.profiles {
		if p.Handle == handle {
			return s.row(p), nil
		}
	}
	return repository.ProfileRow{}, pgx.ErrNoRows
}

func (s *MemoryStore) ListProfiles(ctx context.Context) ([]repository.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	rows := make([]repository.ProfileRow, 0, len(s.profiles))
	for _, p := range s.profiles {
		rows = append(rows, s.row(p))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

func (s *MemoryStore) LockProfileByUserID(ctx context.Context, userID uuid.UUID) (repository.LockProfileByUserIDRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.LockProfileByUserIDRow{}, s.err
	}
	p, ok := s.profiles[userID]
	if !ok {
		return repository.LockProfileByUserIDRow{}, pgx.ErrNoRows
	}
	return repository.LockProfileByUserIDRow{ID: p.ID, Experience: p.Experience, Education: p.Education}, nil
}

func (s *MemoryStore) UpdateProfileExperience(ctx context.Context, arg repository.UpdateProfileExperienceParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if p, ok := s.profiles[arg.UserID]; ok {
		p.Experience = arg.Experience
		s.profiles[arg.UserID] = p
	}
	return nil
}

func (s *MemoryStore) UpdateProfileEducation(ctx context.Context, arg repository.UpdateProfileEducationParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if p, ok := s.profiles[arg.UserID]; ok {
		p.Education = arg.Education
		s.profiles[arg.UserID] = p
	}
	return nil
}

func (s *MemoryStore) DeleteProfileByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.profiles[userID]; !ok {
		return 0, nil
	}
	delete(s.profiles, userID)
	return 1, nil
}

// posts

func (s *MemoryStore) CreatePost(ctx context.Context, arg repository.CreatePostParams) (repository.CorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CorePost{}, s.err
	}
	post := repository.CorePost{
		ID:     arg.ID,
		UserID: arg.UserID,
		Text:   arg.Text,
		Name:   arg.Name,
		Avatar: arg.Avatar,
		Date:   s.tick(),
	}
	s.posts[post.ID] = post
	return post, nil
}

func (s *MemoryStore) GetPostByID(ctx context.Context, id uuid.UUID) (repository.CorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CorePost{}, s.err
	}
	post, ok := s.posts[id]
	if !ok {
		return repository.CorePost{}, pgx.ErrNoRows
	}
	return post, nil
}

func (s *MemoryStore) LockPostByID(ctx context.Context, id uuid.UUID) (repository.CorePost, error) {
	return s.GetPostByID(ctx, id)
}

func (s *MemoryStore) ListPosts(ctx context.Context, arg repository.ListPostsParams) ([]repository.CorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	posts := make([]repository.CorePost, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })

	start := int(arg.Offset)
	if start < 0 {
		start = 0
	}
	if start > len(posts) {
		start = len(posts)
	}
	end := len(posts)
	if arg.Limit.Valid && start+int(arg.Limit.Int32) < end {
		end = start + int(arg.Limit.Int32)
	}
	return posts[start:end], nil
}

func (s *MemoryStore) UpdatePostLikes(ctx context.Context, arg repository.UpdatePostLikesParams) (repository.CorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CorePost{}, s.err
	}
	post, ok := s.posts[arg.ID]
	if !ok {
		return repository.CorePost{}, pgx.ErrNoRows
	}
	post.Likes = arg.Likes
	s.posts[arg.ID] = post
	return post, nil
}

func (s *MemoryStore) UpdatePostComments(ctx context.Context, arg repository.UpdatePostCommentsParams) (repository.CorePost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return repository.CorePost{}, s.err
	}
	post, ok := s.posts[arg.ID]
	if !ok {
		return repository.CorePost{}, pgx.ErrNoRows
	}
	post.Comments = arg.Comments
	s.posts[arg.ID] = post
	return post, nil
}

func (s *MemoryStore) DeletePost(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	if _, ok := s.posts[id]; !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	delete(s.posts, id)
	return id, nil
}
