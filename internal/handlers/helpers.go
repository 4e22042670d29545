package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/middleware"
)

// currentActor returns the caller set by AuthMiddleware, answering 401
// when the route was mounted without it.
func currentActor(c *gin.Context) (identity.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
		return identity.Identity{}, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses s, treating blank as absent.
func optionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_id")
	}
	return &id, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formFile opens the named upload. A missing file is not an error.
func formFile(c *gin.Context, field string) (io.ReadCloser, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		if bodyTooLarge(err) {
			return nil, httperr.ErrBusiness("file_too_large")
		}
		return nil, httperr.ErrBusiness("invalid_request")
	}
	return openHeader(fh)
}

func openHeader(fh *multipart.FileHeader) (io.ReadCloser, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	return f, nil
}

func bodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// bindFailed answers a ShouldBind error, 413 when the body hit its cap.
func bindFailed(c *gin.Context, err error) {
	if bodyTooLarge(err) {
		httperr.Respond(c, httperr.ErrBusiness("file_too_large"), "file_too_large")
		return
	}
	httperr.BadRequest(c, "invalid_request", "Invalid request data.")
}
