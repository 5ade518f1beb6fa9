package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	EquipmentID   int64    `json:"equipment_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	DepositAmount *float64 `json:"deposit_amount,omitempty"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	renterID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), renterID, req.EquipmentID, req.StartDate, req.EndDate, req.DepositAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, booking)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	booking, err := h.bookings.SetBookingStatus(r.Context(), ownerID, bookingID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, booking)
}

func (h *BookingHandler) ListOwnerRequests(w http.ResponseWriter, r *http.Request) {
	ownerID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	requests, err := h.bookings.ListOwnerRequests(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, requests)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid %s", name)
	}
	return id, nil
}
