package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctoup.com/devconnect/internal/testutils"
	"ctoup.com/devconnect/pkg/core/validation"
	"ctoup.com/devconnect/pkg/shared/auth"
	"ctoup.com/devconnect/pkg/shared/event"
	sqlservice "ctoup.com/devconnect/pkg/shared/sql"
)

func TestCreateAndListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, identity := f.register(t)

	var texts []string
	for i := 0; i < 3; i++ {
		text := testutils.RandomText(10, 300)
		post, err := f.posts.Create(ctx, identity, validation.PostInput{Text: text})
		require.NoError(t, err)
		assert.Equal(t, identity.ID, post.UserID)
		assert.Equal(t, identity.Name, post.Name)
		assert.Equal(t, identity.Avatar, post.Avatar)
		assert.NotNil(t, post.Likes)
		assert.NotNil(t, post.Comments)
		texts = append(texts, text)
	}

	posts, err := f.posts.List(ctx, sqlservice.Unpaged)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, texts[2], posts[0].Text)
	assert.Equal(t, texts[0], posts[2].Text)

	page, err := f.posts.List(ctx, sqlservice.PagingSQL{Offset: 1, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, texts[1], page[0].Text)

	assert.Equal(t, []string{event.PostCreated, event.PostCreated, event.PostCreated}, f.events.Types())
}

func TestCreatePostOverridesNameAndAvatar(t *testing.T) {
	f := newFixture(t)
	_, identity := f.register(t)

	post, err := f.posts.Create(context.Background(), identity, validation.PostInput{
		Text: "a post with a custom name", Name: "Custom", Avatar: "//avatar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom", post.Name)
	assert.Equal(t, "//avatar", post.Avatar)
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture(t)
	_, identity := f.register(t)

	_, err := f.posts.Create(context.Background(), identity, validation.PostInput{Text: "too short"})
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, map[string]string{"text": "Post must be between 10 and 300 characters"}, fieldErr.Fields)
	assert.Empty(t, f.events.Types())
}

func TestGetPost(t *testing.T) {
	f := newFixture(t)
	_, err := f.posts.Get(context.Background(), uuid.New())
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, map[string]string{"nopostfound": MsgNoPostWithID}, notFound.Fields)
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, owner := f.register(t)
	_, other := f.register(t)

	post, err := f.posts.Create(ctx, owner, validation.PostInput{Text: "delete me when you can"})
	require.NoError(t, err)

	err = f.posts.Delete(ctx, other.ID, post.ID)
	var unauthorized *UnauthorizedError
	require.True(t, errors.As(err, &unauthorized))
	assert.Equal(t, map[string]string{"notauthorized": MsgNotAuthorized}, unauthorized.Fields)

	require.NoError(t, f.posts.Delete(ctx, owner.ID, post.ID))
	assert.Contains(t, f.events.Types(), event.PostDeleted)

	err = f.posts.Delete(ctx, owner.ID, post.ID)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, map[string]string{"postnotfound": MsgPostNotFound}, notFound.Fields)
}

func TestLikeUnlike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, owner := f.register(t)
	_, fan := f.register(t)

	post, err := f.posts.Create(ctx, owner, validation.PostInput{Text: "please like this post"})
	require.NoError(t, err)

	_, err = f.posts.Unlike(ctx, fan.ID, post.ID)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, map[string]string{"notliked": MsgNotLiked}, fieldErr.Fields)

	liked, err := f.posts.Like(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)
	assert.Equal(t, fan.ID, liked.Likes[0].User)

	_, err = f.posts.Like(ctx, fan.ID, post.ID)
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, map[string]string{"alreadyliked": MsgAlreadyLiked}, fieldErr.Fields)

	liked, err = f.posts.Like(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 2)
	assert.Equal(t, owner.ID, liked.Likes[0].User)

	unliked, err := f.posts.Unlike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, unliked.Likes, 1)
	assert.Equal(t, owner.ID, unliked.Likes[0].User)

	_, err = f.posts.Like(ctx, fan.ID, uuid.New())
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestConcurrentLikesAreNotLost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, owner := f.register(t)
	post, err := f.posts.Create(ctx, owner, validation.PostInput{Text: "a very popular post"})
	require.NoError(t, err)

	const fans = 20
	var wg sync.WaitGroup
	errs := make(chan error, fans)
	for i := 0; i < fans; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.posts.Like(ctx, uuid.New(), post.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := f.posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, fans)
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, owner := f.register(t)
	_, author := f.register(t)
	_, stranger := f.register(t)

	post, err := f.posts.Create(ctx, owner, validation.PostInput{Text: "comment on this post"})
	require.NoError(t, err)

	_, err = f.posts.AddComment(ctx, author, post.ID, validation.PostInput{Text: "short"})
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))

	first, err := f.posts.AddComment(ctx, author, post.ID, validation.PostInput{Text: "first comment here"})
	require.NoError(t, err)
	second, err := f.posts.AddComment(ctx, stranger, post.ID, validation.PostInput{Text: "second comment here"})
	require.NoError(t, err)
	require.Len(t, second.Comments, 2)
	assert.Equal(t, "second comment here", second.Comments[0].Text)
	assert.Equal(t, stranger.Name, second.Comments[0].Name)
	assert.False(t, second.Comments[0].Date.IsZero())
	commentID := first.Comments[0].ID

	_, err = f.posts.RemoveComment(ctx, stranger.ID, post.ID, commentID)
	var unauthorized *UnauthorizedError
	require.True(t, errors.As(err, &unauthorized))

	_, err = f.posts.RemoveComment(ctx, author.ID, post.ID, uuid.New())
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, map[string]string{"commentnotexists": MsgCommentNotExists}, notFound.Fields)

	removed, err := f.posts.RemoveComment(ctx, owner.ID, post.ID, commentID)
	require.NoError(t, err)
	require.Len(t, removed.Comments, 1)
	assert.Equal(t, "second comment here", removed.Comments[0].Text)

	removed, err = f.posts.RemoveComment(ctx, stranger.ID, post.ID, removed.Comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Comments)
}

func TestPostStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.FailWith(errors.New("db down"))

	_, err := f.posts.List(context.Background(), sqlservice.Unpaged)
	require.Error(t, err)
	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound))

	_, err = f.posts.Like(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.False(t, errors.As(err, &notFound))
	assert.False(t, auth.HasCode(err, auth.ErrorCodeUnauthorized))
}
