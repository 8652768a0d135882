package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface is every operation exposed under /api.
type ServerInterface interface {
	GetHealthCheck(c *gin.Context)

	GetUsersTest(c *gin.Context)
	RegisterUser(c *gin.Context)
	LoginUser(c *gin.Context)
	GetCurrentUser(c *gin.Context)
	LogoutUser(c *gin.Context)
	UploadAvatar(c *gin.Context)
	GetAvatar(c *gin.Context)

	GetProfileTest(c *gin.Context)
	GetMyProfile(c *gin.Context)
	ListProfiles(c *gin.Context)
	GetProfileByHandle(c *gin.Context)
	GetProfileByUserID(c *gin.Context)
	UpsertProfile(c *gin.Context)
	AddExperience(c *gin.Context)
	AddEducation(c *gin.Context)
	DeleteExperience(c *gin.Context)
	DeleteEducation(c *gin.Context)
	DeleteAccount(c *gin.Context)

	GetPostsTest(c *gin.Context)
	ListPosts(c *gin.Context)
	GetPost(c *gin.Context)
	CreatePost(c *gin.Context)
	DeletePost(c *gin.Context)
	LikePost(c *gin.Context)
	UnlikePost(c *gin.Context)
	AddComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

var _ ServerInterface = Handlers{}

type GinServerOptions struct {
	BaseURL     string
	Middlewares []gin.HandlerFunc
	// Auth guards the routes that need a signed in user.
	Auth gin.HandlerFunc
}

func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	api := router.Group(options.BaseURL + "/api")
	api.Use(options.Middlewares...)
	authed := options.Auth
	if authed == nil {
		authed = func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	}

	api.GET("/health", si.GetHealthCheck)

	users := api.Group("/users")
	users.GET("/test", si.GetUsersTest)
	users.POST("/register", si.RegisterUser)
	users.POST("/login", si.LoginUser)
	users.GET("/current", authed, si.GetCurrentUser)
	users.POST("/logout", authed, si.LogoutUser)
	users.POST("/avatar", authed, si.UploadAvatar)
	users.GET("/avatar/:user_id", si.GetAvatar)

	profile := api.Group("/profile")
	profile.GET("/test", si.GetProfileTest)
	profile.GET("", authed, si.GetMyProfile)
	profile.GET("/all", si.ListProfiles)
	profile.GET("/handle/:handle", si.GetProfileByHandle)
	profile.GET("/user/:user_id", si.GetProfileByUserID)
	profile.POST("", authed, si.UpsertProfile)
	profile.POST("/experience", authed, si.AddExperience)
	profile.POST("/education", authed, si.AddEducation)
	profile.DELETE("/experience/:exp_id", authed, si.DeleteExperience)
	profile.DELETE("/education/:edu_id", authed, si.DeleteEducation)
	profile.DELETE("", authed, si.DeleteAccount)

	posts := api.Group("/posts")
	posts.GET("/test", si.GetPostsTest)
	posts.GET("", si.ListPosts)
	posts.GET("/:id", si.GetPost)
	posts.POST("", authed, si.CreatePost)
	posts.DELETE("/:id", authed, si.DeletePost)
	posts.POST("/like/:id", authed, si.LikePost)
	posts.POST("/unlike/:id", authed, si.UnlikePost)
	posts.POST("/comment/:id", authed, si.AddComment)
	posts.DELETE("/comment/:id/:comment_id", authed, si.DeleteComment)
}
