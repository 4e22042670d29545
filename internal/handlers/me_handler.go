package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/httpresp"
	"github.com/BruksfildServices01/headz-api/internal/models"
	ucProfile "github.com/BruksfildServices01/headz-api/internal/usecase/profile"
)

type MeHandler struct {
	profiles *ucProfile.Profiles
}

func NewMeHandler(profiles *ucProfile.Profiles) *MeHandler {
	return &MeHandler{profiles: profiles}
}

type UpdateProfileRequest struct {
	FullName         *string `json:"full_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	PreferredStylist *string `json:"preferred_stylist"`
}

// GetMe returns the token's identity plus the profile, when one exists.
func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var profile *models.UserProfile
	p, err := h.profiles.Get(c.Request.Context(), actor)
	switch {
	case err == nil:
		profile = p
	case !httperr.IsBusiness(err, "profile_not_found"):
		httperr.Respond(c, err, "me_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       actor.UserID,
			"email":    actor.Email,
			"role":     actor.Role,
			"is_staff": actor.IsStaff(),
		},
		"profile": profile,
	})
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	p, err := h.profiles.Get(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err, "profile_get_failed")
		return
	}
	httpresp.OK(c, p)
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	p, err := h.profiles.Upsert(c.Request.Context(), actor, ucProfile.UpsertInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredStylist: req.PreferredStylist,
	})
	if err != nil {
		httperr.Respond(c, err, "profile_update_failed")
		return
	}
	httpresp.OK(c, p)
}

// UploadPicture takes a multipart "picture" file.
func (h *MeHandler) UploadPicture(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	file, err := formFile(c, "picture")
	if err != nil {
		httperr.Respond(c, err, "profile_picture_failed")
		return
	}
	if file == nil {
		httperr.Respond(c, httperr.ErrBusiness("missing_photo"), "profile_picture_failed")
		return
	}
	defer file.Close()

	p, err := h.profiles.UploadPicture(c.Request.Context(), actor, file)
	if err != nil {
		httperr.Respond(c, err, "profile_picture_failed")
		return
	}
	httpresp.OK(c, p)
}

// ListProfiles is the staff view of every customer profile.
func (h *MeHandler) ListProfiles(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	list, err := h.profiles.List(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err, "profile_list_failed")
		return
	}
	httpresp.List(c, list)
}
