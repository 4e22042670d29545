package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/httpresp"
	ucTryOn "github.com/BruksfildServices01/headz-api/internal/usecase/tryon"
)

type TryOnHandler struct {
	tryon *ucTryOn.TryOn
}

func NewTryOnHandler(tryon *ucTryOn.TryOn) *TryOnHandler {
	return &TryOnHandler{tryon: tryon}
}

// StartTryOnRequest is bound from multipart fields (with a "photo" file) or
// from JSON carrying a camera capture in photo_data_url.
type StartTryOnRequest struct {
	PhotoDataURL string `json:"photo_data_url" form:"photo_data_url"`
	HairstyleID  string `json:"hairstyle_id" form:"hairstyle_id"`
	Save         bool   `json:"save" form:"save"`
}

type SelectStyleRequest struct {
	HairstyleID string `json:"hairstyle_id" binding:"required"`
}

func (h *TryOnHandler) Start(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req StartTryOnRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	hairstyleID, err := optionalUUID(req.HairstyleID)
	if err != nil {
		httperr.Respond(c, err, "tryon_start_failed")
		return
	}

	photo, err := formFile(c, "photo")
	if err != nil {
		httperr.Respond(c, err, "tryon_start_failed")
		return
	}

	in := ucTryOn.StartInput{
		PhotoDataURL: req.PhotoDataURL,
		HairstyleID:  hairstyleID,
		Save:         req.Save,
	}
	if photo != nil {
		defer photo.Close()
		in.Photo = photo
	}

	s, err := h.tryon.Start(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Respond(c, err, "tryon_start_failed")
		return
	}
	httpresp.Created(c, s)
}

func (h *TryOnHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	list, err := h.tryon.List(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err, "tryon_list_failed")
		return
	}
	httpresp.List(c, list)
}

func (h *TryOnHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	s, err := h.tryon.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err, "tryon_get_failed")
		return
	}
	httpresp.OK(c, s)
}

func (h *TryOnHandler) SelectStyle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req SelectStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}
	hairstyleID, err := optionalUUID(req.HairstyleID)
	if err != nil || hairstyleID == nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return
	}

	s, err := h.tryon.SelectStyle(c.Request.Context(), actor, id, *hairstyleID)
	if err != nil {
		httperr.Respond(c, err, "tryon_select_failed")
		return
	}
	httpresp.OK(c, s)
}

func (h *TryOnHandler) Preview(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	p, err := h.tryon.Preview(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err, "tryon_preview_failed")
		return
	}
	httpresp.OK(c, p)
}

func (h *TryOnHandler) Back(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	s, err := h.tryon.Back(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err, "tryon_back_failed")
		return
	}
	httpresp.OK(c, s)
}

func (h *TryOnHandler) Save(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	s, err := h.tryon.Save(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err, "tryon_save_failed")
		return
	}
	httpresp.OK(c, s)
}

func (h *TryOnHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.tryon.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err, "tryon_delete_failed")
		return
	}
	httpresp.NoContent(c)
}
