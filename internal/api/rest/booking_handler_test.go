package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"sportshare-backend/internal/domain"
)

type stubBookingService struct {
	createFn    func(ctx context.Context, renterID, equipmentID int64, startDate, endDate string, depositAmount *float64) (*domain.Booking, error)
	setStatusFn func(ctx context.Context, ownerID, bookingID int64, status string) (*domain.Booking, error)
	listFn      func(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, renterID, equipmentID int64, startDate, endDate string, depositAmount *float64) (*domain.Booking, error) {
	return s.createFn(ctx, renterID, equipmentID, startDate, endDate, depositAmount)
}

func (s *stubBookingService) SetBookingStatus(ctx context.Context, ownerID, bookingID int64, status string) (*domain.Booking, error) {
	return s.setStatusFn(ctx, ownerID, bookingID, status)
}

func (s *stubBookingService) ListOwnerRequests(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error) {
	return s.listFn(ctx, ownerID)
}

func authed(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, userID))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := &stubBookingService{
			createFn: func(_ context.Context, renterID, equipmentID int64, startDate, endDate string, _ *float64) (*domain.Booking, error) {
				assert.Equal(t, int64(1), renterID)
				assert.Equal(t, int64(5), equipmentID)
				return &domain.Booking{ID: 42, EquipmentID: equipmentID, RenterID: renterID,
					StartDate: startDate, EndDate: endDate, Status: domain.BookingStatusPending}, nil
			},
		}
		handler := NewBookingHandler(svc)

		body := `{"equipment_id":5,"start_date":"2026-09-10","end_date":"2026-09-15"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)), 1)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, true, resp["ok"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("Conflict", func(t *testing.T) {
		svc := &stubBookingService{
			createFn: func(context.Context, int64, int64, string, string, *float64) (*domain.Booking, error) {
				return nil, domain.ErrBookingConflict
			},
		}
		handler := NewBookingHandler(svc)

		body := `{"equipment_id":5,"start_date":"2026-09-10","end_date":"2026-09-15"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)), 1)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, false, resp["ok"])
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadBody", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{})
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{nope`)), 1)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_SetStatus(t *testing.T) {
	t.Run("Approved", func(t *testing.T) {
		svc := &stubBookingService{
			setStatusFn: func(_ context.Context, ownerID, bookingID int64, status string) (*domain.Booking, error) {
				assert.Equal(t, int64(2), ownerID)
				assert.Equal(t, int64(42), bookingID)
				assert.Equal(t, "approved", status)
				return &domain.Booking{ID: bookingID, Status: domain.BookingStatusApproved}, nil
			},
		}
		handler := NewBookingHandler(svc)

		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/bookings/42/status", strings.NewReader(`{"status":"approved"}`)), 2)
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.SetStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "approved", data["status"])
	})

	t.Run("Forbidden", func(t *testing.T) {
		svc := &stubBookingService{
			setStatusFn: func(context.Context, int64, int64, string) (*domain.Booking, error) {
				return nil, domain.ErrNotOwner
			},
		}
		handler := NewBookingHandler(svc)

		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/bookings/42/status", strings.NewReader(`{"status":"approved"}`)), 3)
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.SetStatus(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := &stubBookingService{
			setStatusFn: func(context.Context, int64, int64, string) (*domain.Booking, error) {
				return nil, domain.ErrBookingNotFound
			},
		}
		handler := NewBookingHandler(svc)

		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/bookings/7/status", strings.NewReader(`{"status":"approved"}`)), 2)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rec := httptest.NewRecorder()

		handler.SetStatus(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{})

		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/bookings/abc/status", strings.NewReader(`{"status":"approved"}`)), 2)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()

		handler.SetStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_ListOwnerRequests(t *testing.T) {
	svc := &stubBookingService{
		listFn: func(_ context.Context, ownerID int64) ([]domain.OwnerRequest, error) {
			assert.Equal(t, int64(2), ownerID)
			return []domain.OwnerRequest{{BookingID: 42, EquipmentTitle: "Kayak", Status: "pending"}}, nil
		},
	}
	handler := NewBookingHandler(svc)

	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/owner/requests", nil), 2)
	rec := httptest.NewRecorder()

	handler.ListOwnerRequests(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, true, resp["ok"])
	data := resp["data"].([]any)
	assert.Len(t, data, 1)
}
