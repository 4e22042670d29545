package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

type mapping struct {
	status  int
	message string
}

var businessErrors = map[string]mapping{
	"invalid_request":           {http.StatusBadRequest, "Invalid request data."},
	"invalid_id":                {http.StatusBadRequest, "Invalid identifier."},
	"invalid_gender":            {http.StatusBadRequest, "Gender must be M, F or U."},
	"invalid_length":            {http.StatusBadRequest, "Length must be short, medium or long."},
	"invalid_ordering":          {http.StatusBadRequest, "Unsupported ordering field."},
	"invalid_service":           {http.StatusBadRequest, "Unknown salon service."},
	"invalid_date_or_time":      {http.StatusBadRequest, "Invalid date or time."},
	"invalid_date":              {http.StatusBadRequest, "Invalid date."},
	"invalid_phone":             {http.StatusBadRequest, "Invalid phone number."},
	"invalid_email_domain":      {http.StatusBadRequest, "The email domain does not look valid."},
	"missing_image":             {http.StatusBadRequest, "An image file or image URL is required."},
	"missing_photo":             {http.StatusBadRequest, "A photo is required."},
	"invalid_image":             {http.StatusBadRequest, "The image could not be read."},
	"unsupported_image_type":    {http.StatusBadRequest, "Only JPEG, PNG, WebP and GIF images are accepted."},
	"file_too_large":            {http.StatusRequestEntityTooLarge, "The file is too large."},
	"image_too_large":           {http.StatusRequestEntityTooLarge, "The image dimensions are too large."},
	"invalid_data_url":          {http.StatusBadRequest, "The captured photo is not a valid data URL."},
	"too_soon":                  {http.StatusBadRequest, "Appointments must be booked further in advance."},
	"outside_salon_hours":       {http.StatusBadRequest, "The salon is closed at that time."},
	"invalid_status":            {http.StatusBadRequest, "Unknown appointment status."},
	"missing_fields":            {http.StatusBadRequest, "Required fields are missing."},
	"invalid_state":             {http.StatusBadRequest, "The appointment cannot change to that status."},
	"invalid_step":              {http.StatusBadRequest, "That try-on step is not available now."},
	"field_too_long":            {http.StatusBadRequest, "A field exceeds its maximum length."},
	"category_not_found":        {http.StatusNotFound, "Category not found."},
	"hairstyle_not_found":       {http.StatusNotFound, "Hairstyle not found."},
	"profile_not_found":         {http.StatusNotFound, "Profile not found."},
	"session_not_found":         {http.StatusNotFound, "Try-on session not found."},
	"saved_hairstyle_not_found": {http.StatusNotFound, "Saved hairstyle not found."},
	"appointment_not_found":     {http.StatusNotFound, "Appointment not found."},
	"forbidden":                 {http.StatusForbidden, "Not authorized."},
	"time_conflict":             {http.StatusConflict, "That time slot is already booked."},
	"category_exists":           {http.StatusConflict, "A category with that name already exists."},
	"hairstyle_exists":          {http.StatusConflict, "A hairstyle with that name already exists."},
}

// Respond writes the response for an error returned by a use case.
// Business errors map to their status; anything else is logged and hidden.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if code, ok := BusinessCode(err); ok {
		if m, known := businessErrors[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("code", fallbackCode),
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)
	Internal(c, fallbackCode, "Unexpected error.")
}
