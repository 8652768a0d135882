package core

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ctoup.com/devconnect/api/helpers"
	"ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/core/validation"
)

const maxAvatarSize = 2 << 20

type UserHandler struct {
	accounts *service.AccountService
}

func NewUserHandler(accounts *service.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// GetUsersTest GET /api/users/test
func (h *UserHandler) GetUsersTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Users Works"})
}

// RegisterUser POST /api/users/register
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var in validation.RegisterInput
	if !bindInput(c, &in) {
		return
	}
	user, err := h.accounts.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// LoginUser POST /api/users/login
func (h *UserHandler) LoginUser(c *gin.Context) {
	var in validation.LoginInput
	if !bindInput(c, &in) {
		return
	}
	token, err := h.accounts.Login(c.Request.Context(), c.ClientIP(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// GetCurrentUser GET /api/users/current
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	user, err := h.accounts.Current(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "email": user.Email})
}

// LogoutUser POST /api/users/logout
func (h *UserHandler) LogoutUser(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	if err := h.accounts.Logout(c.Request.Context(), claims); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, helpers.SuccessResponse())
}

// UploadAvatar POST /api/users/avatar (multipart field "file")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"file": "File is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"file": "File must be smaller than 2MB"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err))
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	user, err := h.accounts.UploadAvatar(c.Request.Context(), claims.Identity.ID, data, contentType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetAvatar GET /api/users/avatar/:user_id
func (h *UserHandler) GetAvatar(c *gin.Context) {
	userID, ok := helpers.UUIDParam(c, "user_id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	// ServeAvatar answers 404 and 500 itself once the bucket is reached.
	if err := h.accounts.ServeAvatar(c, userID); errors.Is(err, service.ErrNoFileStorage) {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err))
	}
}
