package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ctoup.com/devconnect/api/helpers"
	"ctoup.com/devconnect/pkg/core/service"
	"ctoup.com/devconnect/pkg/core/validation"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfileTest GET /api/profile/test
func (h *ProfileHandler) GetProfileTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Profile Works"})
}

// GetMyProfile GET /api/profile
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	profile, err := h.profiles.GetCurrent(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles GET /api/profile/all
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileByHandle GET /api/profile/handle/:handle
func (h *ProfileHandler) GetProfileByHandle(c *gin.Context) {
	profile, err := h.profiles.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileByUserID GET /api/profile/user/:user_id
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	userID, ok := idParam(c, "user_id", "noprofile", service.MsgNoProfile)
	if !ok {
		return
	}
	profile, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile POST /api/profile
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	var in validation.ProfileInput
	if !bindInput(c, &in) {
		return
	}
	profile, err := h.profiles.Upsert(c.Request.Context(), claims.Identity.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddExperience POST /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	var in validation.ExperienceInput
	if !bindInput(c, &in) {
		return
	}
	profile, err := h.profiles.AddExperience(c.Request.Context(), claims.Identity.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation POST /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	var in validation.EducationInput
	if !bindInput(c, &in) {
		return
	}
	profile, err := h.profiles.AddEducation(c.Request.Context(), claims.Identity.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteExperience DELETE /api/profile/experience/:exp_id
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	expID, ok := idParam(c, "exp_id", "experiencenotfound", service.MsgExperienceNotFound)
	if !ok {
		return
	}
	profile, err := h.profiles.RemoveExperience(c.Request.Context(), claims.Identity.ID, expID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteEducation DELETE /api/profile/education/:edu_id
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	eduID, ok := idParam(c, "edu_id", "educationnotfound", service.MsgEducationNotFound)
	if !ok {
		return
	}
	profile, err := h.profiles.RemoveEducation(c.Request.Context(), claims.Identity.ID, eduID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount DELETE /api/profile removes the profile and the user.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	claims, ok := authIdentity(c)
	if !ok {
		return
	}
	if err := h.profiles.DeleteAccount(c.Request.Context(), claims.Identity.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, helpers.SuccessResponse())
}
