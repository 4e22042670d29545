package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/httpresp"
	ucGallery "github.com/BruksfildServices01/headz-api/internal/usecase/gallery"
)

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	gallery *ucGallery.Gallery
}

func NewGalleryHandler(gallery *ucGallery.Gallery) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateHairstyleRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	CategoryID  string `json:"category_id" form:"category_id"`
	Gender      string `json:"gender" form:"gender"`
	Length      string `json:"length" form:"length"`
	ImageURL    string `json:"image_url" form:"image_url"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	cats, err := h.gallery.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "category_list_failed")
		return
	}
	httpresp.List(c, cats)
}

func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	cat, err := h.gallery.CreateCategory(c.Request.Context(), actor, req.Name, req.Description)
	if err != nil {
		httperr.Respond(c, err, "category_create_failed")
		return
	}
	httpresp.Created(c, cat)
}

// ======================================================
// HAIRSTYLES
// ======================================================

func (h *GalleryHandler) ListHairstyles(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		httperr.Respond(c, err, "hairstyle_list_failed")
		return
	}

	list, err := h.gallery.ListHairstyles(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err, "hairstyle_list_failed")
		return
	}
	httpresp.List(c, list)
}

func filterFromQuery(c *gin.Context) (domain.Filter, error) {
	var (
		f   domain.Filter
		err error
	)

	if f.CategoryID, err = optionalUUID(c.Query("category_id")); err != nil {
		return f, err
	}
	f.CategoryName = c.Query("category")
	f.Search = c.Query("search")

	if g := c.Query("gender"); g != "" {
		if f.Gender, err = domain.ParseGender(g); err != nil {
			return f, err
		}
	}
	if l := c.Query("length"); l != "" {
		if f.Length, err = domain.ParseLength(l); err != nil {
			return f, err
		}
	}
	if f.Ordering, err = domain.ParseOrdering(c.Query("ordering")); err != nil {
		return f, err
	}

	return f, nil
}

func (h *GalleryHandler) GetHairstyle(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	style, err := h.gallery.GetHairstyle(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "hairstyle_get_failed")
		return
	}
	httpresp.OK(c, style)
}

// CreateHairstyle accepts multipart (with an "image" file) or JSON with an
// image_url.
func (h *GalleryHandler) CreateHairstyle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateHairstyleRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	var categoryID uuid.UUID
	if id, err := optionalUUID(req.CategoryID); err != nil {
		httperr.Respond(c, err, "hairstyle_create_failed")
		return
	} else if id != nil {
		categoryID = *id
	}

	image, err := formFile(c, "image")
	if err != nil {
		httperr.Respond(c, err, "hairstyle_create_failed")
		return
	}

	in := ucGallery.CreateHairstyleInput{
		Actor:       actor,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Gender:      req.Gender,
		Length:      req.Length,
		ImageURL:    req.ImageURL,
	}
	if image != nil {
		defer image.Close()
		in.Image = image
	}

	style, err := h.gallery.CreateHairstyle(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, "hairstyle_create_failed")
		return
	}
	httpresp.Created(c, style)
}

func (h *GalleryHandler) Like(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	likes, err := h.gallery.LikeHairstyle(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "hairstyle_like_failed")
		return
	}
	httpresp.OK(c, gin.H{"id": id, "likes": likes})
}
