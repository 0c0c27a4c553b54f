package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizukanami/salon-booking-backend/internal/auth"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
	"github.com/shizukanami/salon-booking-backend/internal/reservation"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

type stubService struct {
	bookFn      func(ctx context.Context, userID, courseID string, start time.Time) (*reservation.Reservation, error)
	cancelFn    func(ctx context.Context, id, actorID string, actorIsAdmin bool) error
	getByIDFn   func(ctx context.Context, id string) (*reservation.Reservation, error)
	listSlotsFn func(ctx context.Context, courseID string, date time.Time) ([]time.Time, schedule.Window, error)
}

func (s *stubService) Book(ctx context.Context, userID, courseID string, start time.Time) (*reservation.Reservation, error) {
	return s.bookFn(ctx, userID, courseID, start)
}

func (s *stubService) Cancel(ctx context.Context, id, actorID string, actorIsAdmin bool) error {
	return s.cancelFn(ctx, id, actorID, actorIsAdmin)
}

func (s *stubService) Reschedule(context.Context, string, time.Time) (*reservation.Reservation, error) {
	panic("not expected")
}

func (s *stubService) ListSlots(ctx context.Context, courseID string, date time.Time) ([]time.Time, schedule.Window, error) {
	return s.listSlotsFn(ctx, courseID, date)
}

func (s *stubService) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubService) List(context.Context, reservation.Filter) ([]*reservation.Reservation, int, error) {
	panic("not expected")
}

var testJWT = auth.NewJWTManager("test-secret", time.Minute)

func newTestRouter(svc reservation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc), auth.AuthRequired(testJWT), func(c *gin.Context) { c.Next() })
	return r
}

func executeRequest(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSlotsEndpoint(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	svc := &stubService{
		listSlotsFn: func(_ context.Context, courseID string, date time.Time) ([]time.Time, schedule.Window, error) {
			assert.Equal(t, day, date)
			return []time.Time{day.Add(10 * time.Hour)}, schedule.DefaultWindow(), nil
		},
	}
	router := newTestRouter(svc)

	w := executeRequest(t, router, "GET",
		"/v1/courses/0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10/slots?date=2025-06-02", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.False(t, resp.IsClosed)
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Len(t, resp.Slots, 1)
}

func TestSlotsEndpointRejectsBadDate(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := executeRequest(t, router, "GET",
		"/v1/courses/0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10/slots?date=June-2nd", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := executeRequest(t, router, "POST", "/v1/reservations",
		`{"course_id":"0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10","start_time":"2025-06-02T10:00:00Z"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBooksForCaller(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc := &stubService{
		bookFn: func(_ context.Context, userID, courseID string, gotStart time.Time) (*reservation.Reservation, error) {
			assert.Equal(t, "user-1", userID)
			assert.True(t, start.Equal(gotStart))
			return &reservation.Reservation{
				ID:        "res-1",
				UserID:    userID,
				CourseID:  courseID,
				StartTime: gotStart,
				EndTime:   gotStart.Add(time.Hour),
				Status:    reservation.StatusConfirmed,
			}, nil
		},
	}
	router := newTestRouter(svc)

	token, err := testJWT.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	w := executeRequest(t, router, "POST", "/v1/reservations",
		`{"course_id":"0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10","start_time":"2025-06-02T10:00:00Z"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestCreateMapsConflictStatus(t *testing.T) {
	svc := &stubService{
		bookFn: func(context.Context, string, string, time.Time) (*reservation.Reservation, error) {
			return nil, reservation.ErrSlotConflict
		},
	}
	router := newTestRouter(svc)

	token, err := testJWT.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	w := executeRequest(t, router, "POST", "/v1/reservations",
		`{"course_id":"0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10","start_time":"2025-06-02T10:00:00Z"}`, token)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestGetEnforcesOwnershipButAdminRouteDoesNot(t *testing.T) {
	const resID = "1f6b3c2a-9d4e-4f0b-8a7c-5e2d1b9c8a70"
	svc := &stubService{
		getByIDFn: func(_ context.Context, id string) (*reservation.Reservation, error) {
			assert.Equal(t, resID, id)
			return &reservation.Reservation{
				ID:     resID,
				UserID: "owner-1",
				Status: reservation.StatusConfirmed,
			}, nil
		},
	}
	router := newTestRouter(svc)

	ownerToken, err := testJWT.GenerateAccessToken("owner-1", "alice@example.com")
	require.NoError(t, err)
	otherToken, err := testJWT.GenerateAccessToken("other-1", "bob@example.com")
	require.NoError(t, err)

	t.Run("owner can read their own", func(t *testing.T) {
		w := executeRequest(t, router, "GET", "/v1/reservations/"+resID, "", ownerToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other users get 403", func(t *testing.T) {
		w := executeRequest(t, router, "GET", "/v1/reservations/"+resID, "", otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin route reads anyone's", func(t *testing.T) {
		w := executeRequest(t, router, "GET", "/v1/admin/reservations/"+resID, "", otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "owner-1", resp.UserID)
	})
}

func TestCreateMapsInsufficientPointsStatus(t *testing.T) {
	svc := &stubService{
		bookFn: func(context.Context, string, string, time.Time) (*reservation.Reservation, error) {
			return nil, reservation.ErrInsufficientPoints
		},
	}
	router := newTestRouter(svc)

	token, err := testJWT.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	w := executeRequest(t, router, "POST", "/v1/reservations",
		`{"course_id":"0d9584f2-7b3c-4f5e-9a1d-6c2b8e4a7f10","start_time":"2025-06-02T10:00:00Z"}`, token)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}
