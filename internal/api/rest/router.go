package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"sportshare-backend/internal/security"
	"sportshare-backend/internal/service"
)

// NewRouter builds the full route table. Search and calendar are public
// reads; everything else requires a bearer token.
func NewRouter(
	tokens security.TokenManager,
	bookings service.BookingService,
	equipment service.EquipmentService,
	calendar service.CalendarService,
	notifications service.NotificationService,
) http.Handler {
	bookingHandler := NewBookingHandler(bookings)
	equipmentHandler := NewEquipmentHandler(equipment, calendar)
	notificationHandler := NewNotificationHandler(notifications)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeOK(w, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	public := r.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/equipment/search", equipmentHandler.Search).Methods(http.MethodGet)
	public.HandleFunc("/equipment/{id:[0-9]+}/calendar", equipmentHandler.GetCalendar).Methods(http.MethodGet)
	public.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Get).Methods(http.MethodGet)

	private := r.PathPrefix("/api/v1").Subrouter()
	private.Use(AuthMiddleware(tokens))
	private.HandleFunc("/equipment", equipmentHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/equipment/mine", equipmentHandler.ListMine).Methods(http.MethodGet)
	private.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/bookings/owner/requests", bookingHandler.ListOwnerRequests).Methods(http.MethodGet)
	private.HandleFunc("/bookings/{id:[0-9]+}/status", bookingHandler.SetStatus).Methods(http.MethodPut)
	private.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkRead).Methods(http.MethodPost)

	return r
}
