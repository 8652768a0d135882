package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ctoup.com/devconnect/api/helpers"
	"ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/core/validation"
)

const (
	maxPostsPageSize     = 50
	defaultPostsPageSize = 20
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// GetPostsTest GET /api/posts/test
func (h *PostHandler) GetPostsTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Posts Works"})
}

// ListPosts GET /api/posts?page=&page_size=
func (h *PostHandler) ListPosts(c *gin.Context) {
	req := helpers.PagingRequest{
		MaxPageSize:     maxPostsPageSize,
		DefaultPageSize: defaultPostsPageSize,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err))
		return
	}
	posts, err := h.posts.List(c.Request.Context(), helpers.GetPagingSQL(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := idParam(c, "id", "nopostfound", service.MsgNoPostWithID)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	var in validation.PostInput
	if !bindInput(c, &in) {
		return
	}
	post, err := h.posts.Create(c.Request.Context(), claims.Identity, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", "postnotfound", service.MsgPostNotFound)
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), claims.Identity.ID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, helpers.SuccessResponse())
}

// LikePost POST /api/posts/like/:id
func (h *PostHandler) LikePost(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", "postnotfound", service.MsgPostNotFound)
	if !ok {
		return
	}
	post, err := h.posts.Like(c.Request.Context(), claims.Identity.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UnlikePost POST /api/posts/unlike/:id
func (h *PostHandler) UnlikePost(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", "postnotfound", service.MsgPostNotFound)
	if !ok {
		return
	}
	post, err := h.posts.Unlike(c.Request.Context(), claims.Identity.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddComment POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", "postnotfound", service.MsgPostNotFound)
	if !ok {
		return
	}
	var in validation.PostInput
	if !bindInput(c, &in) {
		return
	}
	post, err := h.posts.AddComment(c.Request.Context(), claims.Identity, id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteComment DELETE /api/posts/comment/:id/:comment_id
func (h *PostHandler) DeleteComment(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id", "postnotfound", service.MsgPostNotFound)
	if !ok {
		return
	}
	commentID, ok := idParam(c, "comment_id", "commentnotexists", service.MsgCommentNotExists)
	if !ok {
		return
	}
	post, err := h.posts.RemoveComment(c.Request.Context(), claims.Identity.ID, id, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
