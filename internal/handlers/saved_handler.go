package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/httpresp"
	ucSaved "github.com/BruksfildServices01/headz-api/internal/usecase/saved"
)

type SavedHandler struct {
	saved *ucSaved.SavedHairstyles
}

func NewSavedHandler(saved *ucSaved.SavedHairstyles) *SavedHandler {
	return &SavedHandler{saved: saved}
}

type SaveHairstyleRequest struct {
	HairstyleID    string `json:"hairstyle_id" binding:"required"`
	TryOnSessionID string `json:"tryon_session_id"`
}

func (h *SavedHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	list, err := h.saved.List(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err, "saved_list_failed")
		return
	}
	httpresp.List(c, list)
}

func (h *SavedHandler) Save(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req SaveHairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	hairstyleID, err := optionalUUID(req.HairstyleID)
	if err != nil || hairstyleID == nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return
	}
	sessionID, err := optionalUUID(req.TryOnSessionID)
	if err != nil {
		httperr.Respond(c, err, "saved_create_failed")
		return
	}

	s, err := h.saved.Save(c.Request.Context(), actor, *hairstyleID, sessionID)
	if err != nil {
		httperr.Respond(c, err, "saved_create_failed")
		return
	}
	httpresp.Created(c, s)
}

func (h *SavedHandler) Remove(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	hairstyleID, ok := uuidParam(c, "hairstyle_id")
	if !ok {
		return
	}

	if err := h.saved.Remove(c.Request.Context(), actor, hairstyleID); err != nil {
		httperr.Respond(c, err, "saved_delete_failed")
		return
	}
	httpresp.NoContent(c)
}
