package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
	calendar  service.CalendarService
}

func NewEquipmentHandler(equipment service.EquipmentService, calendar service.CalendarService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment, calendar: calendar}
}

type createEquipmentRequest struct {
	SportID      int64                 `json:"sport_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Size         string                `json:"size"`
	ConditionID  int64                 `json:"condition_id"`
	Latitude     *float64              `json:"latitude,omitempty"`
	Longitude    *float64              `json:"longitude,omitempty"`
	ImageURLs    []string              `json:"image_urls"`
	Availability []availabilityPayload `json:"availability"`
}

type availabilityPayload struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	eq := &domain.Equipment{
		OwnerID:     ownerID,
		SportID:     req.SportID,
		Title:       req.Title,
		Description: req.Description,
		Size:        req.Size,
		ConditionID: req.ConditionID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	intervals := make([]domain.AvailabilityInterval, 0, len(req.Availability))
	for _, iv := range req.Availability {
		intervals = append(intervals, domain.AvailabilityInterval{
			StartDate: iv.StartDate,
			EndDate:   iv.EndDate,
		})
	}

	created, err := h.equipment.CreateEquipment(r.Context(), eq, req.ImageURLs, intervals)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, created)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, detail)
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID, err := actorID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	summaries, err := h.equipment.ListMyEquipment(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, summaries)
}

func (h *EquipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{
		Query:     q.Get("q"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if v := q.Get("sport_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, domain.Validationf("invalid sport_id"))
			return
		}
		filter.SportID = id
	}
	filter.Page = queryInt(q.Get("page"))
	filter.PageSize = queryInt(q.Get("page_size"))

	lat, latErr := queryFloat(q.Get("lat"))
	lng, lngErr := queryFloat(q.Get("lng"))
	radius, radiusErr := queryFloat(q.Get("radius_km"))
	if latErr != nil || lngErr != nil || radiusErr != nil {
		writeError(w, domain.Validationf("lat, lng and radius_km must be numbers"))
		return
	}
	if lat != nil || lng != nil || radius != nil {
		if lat == nil || lng == nil || radius == nil {
			writeError(w, domain.Validationf("lat, lng and radius_km must be provided together"))
			return
		}
		filter.Latitude, filter.Longitude, filter.RadiusKm = lat, lng, radius
	}

	summaries, err := h.equipment.SearchEquipment(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, summaries)
}

func (h *EquipmentHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	cal, err := h.calendar.GetCalendar(r.Context(), id, q.Get("start"), q.Get("end"), q.Get("debug") == "1")
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, cal)
}

func queryInt(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func queryFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
