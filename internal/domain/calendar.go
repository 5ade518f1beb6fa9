package domain

// Calendar classifies every day of a half-open window [Start, End) for one
// equipment item. A day can appear in both AvailableDays and PendingDays:
// availability is computed against blocking bookings only, pending holds
// are reported as an informational overlay.
type Calendar struct {
	EquipmentID   int64    `json:"equipment_id"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	AvailableDays []string `json:"available_days"`
	BookedDays    []string `json:"booked_days"`
	PendingDays   []string `json:"pending_days"`
	DebugRows     []string `json:"_debug_rows,omitempty"`
}
