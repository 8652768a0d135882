package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ctoup.com/devconnect/pkg/core/db"
	"ctoup.com/devconnect/pkg/core/db/repository"
	"ctoup.com/devconnect/pkg/core/validation"
	"ctoup.com/devconnect/pkg/shared/auth"
	"ctoup.com/devconnect/pkg/shared/event"
	"ctoup.com/devconnect/pkg/shared/repository/subentity"
	"ctoup.com/devconnect/pkg/shared/util"
	sqlservice "ctoup.com/devconnect/pkg/shared/sql"
)

type PostService struct {
	store  db.Store
	events event.Publisher
	now    func() time.Time
}

func NewPostService(store db.Store, events event.Publisher) *PostService {
	if events == nil {
		events = event.NoopPublisher{}
	}
	return &PostService{store: store, events: events, now: time.Now}
}

func normalizePost(p repository.CorePost) repository.CorePost {
	p.Likes = util.GetNotNilArray(p.Likes)
	p.Comments = util.GetNotNilArray(p.Comments)
	return p
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context, paging sqlservice.PagingSQL) ([]repository.CorePost, error) {
	posts, err := s.store.ListPosts(ctx, repository.ListPostsParams{
		Limit:  paging.Limit(),
		Offset: paging.Offset,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, NewNotFoundError("nopostfound", MsgNoPostsFound, err)
		}
		return nil, fmt.Errorf("list posts: %w", err)
	}
	result := make([]repository.CorePost, 0, len(posts))
	for _, p := range posts {
		result = append(result, normalizePost(p))
	}
	return result, nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (repository.CorePost, error) {
	post, err := s.store.GetPostByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return repository.CorePost{}, NewNotFoundError("nopostfound", MsgNoPostWithID, err)
		}
		return repository.CorePost{}, fmt.Errorf("get post: %w", err)
	}
	return normalizePost(post), nil
}

// Create stores a post owned by the caller. Name and avatar default to the token identity.
func (s *PostService) Create(ctx context.Context, author auth.Identity, in validation.PostInput) (repository.CorePost, error) {
	if errs, ok := validation.ValidatePostInput(in); !ok {
		return repository.CorePost{}, &FieldError{Fields: errs}
	}
	name, avatar := authorOf(author, in)
	post, err := s.store.CreatePost(ctx, repository.CreatePostParams{
		ID:     uuid.New(),
		UserID: author.ID,
		Text:   trimmed(in.Text),
		Name:   name,
		Avatar: avatar,
	})
	if err != nil {
		return repository.CorePost{}, fmt.Errorf("create post: %w", err)
	}
	s.events.Publish(ctx, event.NewEvent(event.PostCreated, author.ID, post.ID, post.Text))
	return normalizePost(post), nil
}

func authorOf(author auth.Identity, in validation.PostInput) (string, string) {
	name, avatar := trimmed(in.Name), trimmed(in.Avatar)
	if name == "" {
		name = author.Name
	}
	if avatar == "" {
		avatar = author.Avatar
	}
	return name, avatar
}

// Delete removes a post. Only its owner may do so.
func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		post, err := lockPost(ctx, q, postID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return NewUnauthorizedError("notauthorized", MsgNotAuthorized)
		}
		if _, err := q.DeletePost(ctx, postID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.events.Publish(ctx, event.NewEvent(event.PostDeleted, userID, postID, ""))
	return nil
}

func lockPost(ctx context.Context, q repository.Querier, postID uuid.UUID) (repository.CorePost, error) {
	post, err := q.LockPostByID(ctx, postID)
	if err != nil {
		if isNoRows(err) {
			return repository.CorePost{}, NewNotFoundError("postnotfound", MsgPostNotFound, err)
		}
		return repository.CorePost{}, fmt.Errorf("lock post: %w", err)
	}
	return post, nil
}

// editPost locks the post, lets fn compute the new state and returns it.
func (s *PostService) editPost(ctx context.Context, postID uuid.UUID, fn func(repository.Querier, repository.CorePost) (repository.CorePost, error)) (repository.CorePost, error) {
	var updated repository.CorePost
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		post, err := lockPost(ctx, q, postID)
		if err != nil {
			return err
		}
		updated, err = fn(q, post)
		return err
	})
	if err != nil {
		return repository.CorePost{}, err
	}
	return normalizePost(updated), nil
}

func (s *PostService) Like(ctx context.Context, userID, postID uuid.UUID) (repository.CorePost, error) {
	post, err := s.editPost(ctx, postID, func(q repository.Querier, post repository.CorePost) (repository.CorePost, error) {
		if subentity.IndexOfLike(post.Likes, userID) >= 0 {
			return post, NewFieldError("alreadyliked", MsgAlreadyLiked)
		}
		return q.UpdatePostLikes(ctx, repository.UpdatePostLikesParams{
			ID:    postID,
			Likes: subentity.Prepend(post.Likes, subentity.Like{ID: uuid.New(), User: userID}),
		})
	})
	if err != nil {
		return post, err
	}
	s.events.Publish(ctx, event.NewEvent(event.PostLiked, userID, postID, ""))
	return post, nil
}

func (s *PostService) Unlike(ctx context.Context, userID, postID uuid.UUID) (repository.CorePost, error) {
	post, err := s.editPost(ctx, postID, func(q repository.Querier, post repository.CorePost) (repository.CorePost, error) {
		index := subentity.IndexOfLike(post.Likes, userID)
		if index < 0 {
			return post, NewFieldError("notliked", MsgNotLiked)
		}
		return q.UpdatePostLikes(ctx, repository.UpdatePostLikesParams{
			ID:    postID,
			Likes: subentity.RemoveAt(post.Likes, index),
		})
	})
	if err != nil {
		return post, err
	}
	s.events.Publish(ctx, event.NewEvent(event.PostUnliked, userID, postID, ""))
	return post, nil
}

func (s *PostService) AddComment(ctx context.Context, author auth.Identity, postID uuid.UUID, in validation.PostInput) (repository.CorePost, error) {
	if errs, ok := validation.ValidatePostInput(in); !ok {
		return repository.CorePost{}, &FieldError{Fields: errs}
	}
	name, avatar := authorOf(author, in)
	comment := subentity.Comment{
		ID:     uuid.New(),
		User:   author.ID,
		Text:   trimmed(in.Text),
		Name:   name,
		Avatar: avatar,
		Date:   s.now().UTC(),
	}
	post, err := s.editPost(ctx, postID, func(q repository.Querier, post repository.CorePost) (repository.CorePost, error) {
		return q.UpdatePostComments(ctx, repository.UpdatePostCommentsParams{
			ID:       postID,
			Comments: subentity.Prepend(post.Comments, comment),
		})
	})
	if err != nil {
		return post, err
	}
	s.events.Publish(ctx, event.NewEvent(event.PostCommented, author.ID, postID, comment.Text))
	return post, nil
}

// RemoveComment deletes a comment. The comment author and the post owner are allowed to.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uuid.UUID) (repository.CorePost, error) {
	return s.editPost(ctx, postID, func(q repository.Querier, post repository.CorePost) (repository.CorePost, error) {
		index := subentity.IndexOf(post.Comments, commentID)
		if index < 0 {
			return post, NewNotFoundError("commentnotexists", MsgCommentNotExists, nil)
		}
		if post.Comments[index].User != userID && post.UserID != userID {
			return post, NewUnauthorizedError("notauthorized", MsgNotAuthorized)
		}
		return q.UpdatePostComments(ctx, repository.UpdatePostCommentsParams{
			ID:       postID,
			Comments: subentity.RemoveAt(post.Comments, index),
		})
	})
}
