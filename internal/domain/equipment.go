package domain

type IntervalKind string

const (
	IntervalKindAvailable IntervalKind = "available"
)

// AvailabilityInterval is an owner-declared window during which an
// equipment item is nominally rentable. Ranges are half-open [start, end)
// and immutable once declared. Declarations may overlap each other.
type AvailabilityInterval struct {
	ID          int64        `json:"id"`
	EquipmentID int64        `json:"equipment_id"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Kind        IntervalKind `json:"kind"`
}

type Equipment struct {
	ID          int64    `json:"id"`
	OwnerID     int64    `json:"owner_id"`
	SportID     int64    `json:"sport_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	ConditionID int64    `json:"condition_id"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type EquipmentImage struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipment_id"`
	ImageURL    string `json:"image_url"`
}

// EquipmentSummary is a catalog listing row with the first image attached.
type EquipmentSummary struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	SportID     int64    `json:"sport_id"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CreatedAt   string   `json:"created_at"`
	ImageURL    *string  `json:"image_url"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

type EquipmentDetail struct {
	Equipment        *Equipment             `json:"equipment"`
	Images           []EquipmentImage       `json:"images"`
	Availability     []AvailabilityInterval `json:"availability"`
	ApprovedBookings []Booking              `json:"approved_bookings"`
}

// EquipmentFilter is the explicit search input; only set fields narrow the
// result. Date fields filter to items whose declared availability contains
// [StartDate, EndDate) with no non-cancelled booking overlapping it.
type EquipmentFilter struct {
	Query     string
	SportID   int64
	StartDate string
	EndDate   string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	Page      int
	PageSize  int
}
