package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/headz-api/internal/cache"
	apDomain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	hsDomain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/middleware"
	"github.com/BruksfildServices01/headz-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/headz-api/internal/usecase/appointment"
	ucGallery "github.com/BruksfildServices01/headz-api/internal/usecase/gallery"
	ucProfile "github.com/BruksfildServices01/headz-api/internal/usecase/profile"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Monday, salon opens at 09:00 UTC.
var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func as(id identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, id)
		c.Next()
	}
}

func customer() identity.Identity {
	return identity.Identity{UserID: uuid.New(), Email: "ana@example.com"}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ======================================================
// GALLERY
// ======================================================

func galleryRouter(repo *fakeHairstyles) *gin.Engine {
	h := NewGalleryHandler(ucGallery.NewGallery(repo, cache.Noop{}, nil, nopRecorder{}))

	r := gin.New()
	r.GET("/hairstyles", h.ListHairstyles)
	r.GET("/hairstyles/:id", h.GetHairstyle)
	r.POST("/hairstyles/:id/like", h.Like)
	r.POST("/categories", h.CreateCategory)
	r.POST("/hairstyles", as(customer()), h.CreateHairstyle)
	return r
}

func TestGallery_ListHairstylesParsesFilters(t *testing.T) {
	repo := &fakeHairstyles{styles: []models.Hairstyle{{ID: uuid.New(), Name: "Bob"}}}
	r := galleryRouter(repo)

	w := doJSON(r, http.MethodGet, "/hairstyles?gender=f&length=short&ordering=-likes&search=bo", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["total"])

	assert.Equal(t, hsDomain.GenderFemale, repo.last.Gender)
	assert.Equal(t, hsDomain.LengthShort, repo.last.Length)
	assert.Equal(t, hsDomain.Ordering{Field: "likes", Desc: true}, repo.last.Ordering)
	assert.Equal(t, "bo", repo.last.Search)
}

func TestGallery_ListHairstylesRejectsBadFilter(t *testing.T) {
	r := galleryRouter(&fakeHairstyles{})

	w := doJSON(r, http.MethodGet, "/hairstyles?gender=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_gender", decode(t, w)["error_code"])

	w = doJSON(r, http.MethodGet, "/hairstyles?ordering=price", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_ordering", decode(t, w)["error_code"])
}

func TestGallery_LikeReturnsCounter(t *testing.T) {
	id := uuid.New()
	r := galleryRouter(&fakeHairstyles{styles: []models.Hairstyle{{ID: id, Name: "Bob"}}})

	doJSON(r, http.MethodPost, "/hairstyles/"+id.String()+"/like", nil)
	w := doJSON(r, http.MethodPost, "/hairstyles/"+id.String()+"/like", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["likes"])
}

func TestGallery_LikeUnknownAndMalformedID(t *testing.T) {
	r := galleryRouter(&fakeHairstyles{})

	w := doJSON(r, http.MethodPost, "/hairstyles/"+uuid.NewString()+"/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/hairstyles/abc/like", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decode(t, w)["error_code"])
}

func TestGallery_CreateHairstyleUnknownCategoryIsNotFound(t *testing.T) {
	r := galleryRouter(&fakeHairstyles{})

	w := doJSON(r, http.MethodPost, "/hairstyles", CreateHairstyleRequest{
		Name: "Crop", Description: "Textured", CategoryID: uuid.NewString(),
		Gender: "U", Length: "short", ImageURL: "https://example.com/crop.jpg",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category_not_found", decode(t, w)["error_code"])
}

func TestGallery_CreateCategoryNeedsIdentity(t *testing.T) {
	r := galleryRouter(&fakeHairstyles{})

	w := doJSON(r, http.MethodPost, "/categories", map[string]string{"name": "Braids"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func appointmentRouter(repo *fakeAppointments, actor identity.Identity) *gin.Engine {
	salon := ucAppointment.Salon{
		Hours: apDomain.SalonHours{
			Open:       "09:00",
			Close:      "18:00",
			ClosedDays: []int{0},
			Location:   time.UTC,
		},
		MinAdvance: time.Hour,
		Now:        func() time.Time { return fixedNow },
	}
	rec := nopRecorder{}

	h := NewAppointmentHandler(salon, AppointmentUseCases{
		Create:       ucAppointment.NewCreateAppointment(repo, newFakeProfiles(), salon, rec),
		Update:       ucAppointment.NewUpdateAppointment(repo, salon, rec),
		Cancel:       ucAppointment.NewCancelAppointment(repo, salon, rec),
		Confirm:      ucAppointment.NewConfirmAppointment(repo, rec),
		Complete:     ucAppointment.NewCompleteAppointment(repo, salon, rec),
		Delete:       ucAppointment.NewDeleteAppointment(repo, rec),
		List:         ucAppointment.NewListAppointments(repo, salon),
		Availability: ucAppointment.NewGetAvailability(repo, salon),
	})

	r := gin.New()
	r.GET("/availability", h.Availability)

	auth := r.Group("/", as(actor))
	auth.POST("/appointments", h.Create)
	auth.GET("/appointments", h.List)
	auth.PATCH("/appointments/:id/cancel", h.Cancel)
	auth.PATCH("/appointments/:id/confirm", h.Confirm)
	return r
}

func TestAppointments_Availability(t *testing.T) {
	repo := newFakeAppointments()
	repo.busy = []apDomain.Interval{{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	}}
	r := appointmentRouter(repo, customer())

	w := doJSON(r, http.MethodGet, "/availability?date=2026-03-02&service=consultation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date  string              `json:"date"`
		Slots []apDomain.TimeSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2026-03-02", body.Date)
	require.Len(t, body.Slots, 17)
	assert.Equal(t, apDomain.TimeSlot{Start: "09:00", End: "09:30"}, body.Slots[0])
	assert.Equal(t, "09:30", body.Slots[1].Start)
	assert.Equal(t, "10:30", body.Slots[2].Start)
}

func TestAppointments_AvailabilityValidation(t *testing.T) {
	r := appointmentRouter(newFakeAppointments(), customer())

	w := doJSON(r, http.MethodGet, "/availability?date=2026-03-02", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_fields", decode(t, w)["error_code"])

	w = doJSON(r, http.MethodGet, "/availability?date=2026-03-02&service=perm", nil)
	assert.Equal(t, "invalid_service", decode(t, w)["error_code"])

	w = doJSON(r, http.MethodGet, "/availability?date=02/03/2026&service=styling", nil)
	assert.Equal(t, "invalid_date", decode(t, w)["error_code"])
}

func TestAppointments_CreateThenConflict(t *testing.T) {
	repo := newFakeAppointments()
	r := appointmentRouter(repo, customer())

	req := CreateAppointmentRequest{Service: "consultation", Date: "2026-03-02", Time: "10:00"}

	w := doJSON(r, http.MethodPost, "/appointments", req)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "10:00", body["time"])
	assert.Equal(t, "10:30", body["end_time"])
	assert.Equal(t, "Initial Consultation", body["service_label"])
	assert.Equal(t, "pending", body["status"])

	w = doJSON(r, http.MethodPost, "/appointments", req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "time_conflict", decode(t, w)["error_code"])
}

func TestAppointments_CreateRejectsMissingFieldsAndEarlySlots(t *testing.T) {
	r := appointmentRouter(newFakeAppointments(), customer())

	w := doJSON(r, http.MethodPost, "/appointments", map[string]string{"service": "styling"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])

	w = doJSON(r, http.MethodPost, "/appointments", CreateAppointmentRequest{
		Service: "styling", Date: "2026-03-02", Time: "08:30",
	})
	assert.Equal(t, "too_soon", decode(t, w)["error_code"])
}

func TestAppointments_ListIsScopedToCaller(t *testing.T) {
	repo := newFakeAppointments()
	me := customer()
	other := uuid.New()

	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	for _, owner := range []uuid.UUID{me.UserID, other} {
		require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
			UserID: owner, Service: "styling", StartsAt: start, EndsAt: start.Add(time.Hour), Status: "pending",
		}))
	}

	w := doJSON(appointmentRouter(repo, me), http.MethodGet, "/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}

func TestAppointments_ConfirmIsStaffOnly(t *testing.T) {
	repo := newFakeAppointments()
	me := customer()
	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{UserID: me.UserID, Service: "styling", StartsAt: start, EndsAt: start.Add(time.Hour), Status: "pending"}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	w := doJSON(appointmentRouter(repo, me), http.MethodPatch, "/appointments/"+ap.ID.String()+"/confirm", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	staff := identity.Identity{UserID: uuid.New(), Role: identity.RoleStaff}
	w = doJSON(appointmentRouter(repo, staff), http.MethodPatch, "/appointments/"+ap.ID.String()+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decode(t, w)["status"])
}

func TestAppointments_CancelOtherUsersBookingIsForbidden(t *testing.T) {
	repo := newFakeAppointments()
	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{UserID: uuid.New(), Service: "styling", StartsAt: start, EndsAt: start.Add(time.Hour), Status: "pending"}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	w := doJSON(appointmentRouter(repo, customer()), http.MethodPatch, "/appointments/"+ap.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ======================================================
// ME
// ======================================================

func meRouter(repo *fakeProfiles, actor identity.Identity) *gin.Engine {
	h := NewMeHandler(ucProfile.NewProfiles(repo, nil, nopRecorder{}, nil))

	r := gin.New()
	auth := r.Group("/", as(actor))
	auth.GET("/me", h.GetMe)
	auth.GET("/me/profile", h.GetProfile)
	auth.PUT("/me/profile", h.UpdateProfile)
	return r
}

func TestMe_WithoutProfile(t *testing.T) {
	me := customer()
	r := meRouter(newFakeProfiles(), me)

	w := doJSON(r, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Nil(t, body["profile"])
	assert.Equal(t, me.UserID.String(), body["user"].(map[string]any)["id"])

	w = doJSON(r, http.MethodGet, "/me/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "profile_not_found", decode(t, w)["error_code"])
}

func TestMe_UpdateProfileCreatesIt(t *testing.T) {
	repo := newFakeProfiles()
	me := customer()
	r := meRouter(repo, me)

	name := "Ana Souza"
	w := doJSON(r, http.MethodPut, "/me/profile", UpdateProfileRequest{FullName: &name})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, name, decode(t, w)["full_name"])

	require.Contains(t, repo.byUser, me.UserID)
}
