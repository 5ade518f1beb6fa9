package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusHandoff   BookingStatus = "handoff"
	BookingStatusInUse     BookingStatus = "in_use"
	BookingStatusReturning BookingStatus = "returning"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BlockingStatuses are the statuses that reserve the equipment exclusively.
// A pending booking is only a soft hold and never blocks anyone.
var BlockingStatuses = []string{
	string(BookingStatusApproved),
	string(BookingStatusHandoff),
	string(BookingStatusInUse),
	string(BookingStatusReturning),
}

// Blocks reports whether a booking in this status occupies its date range.
func (s BookingStatus) Blocks() bool {
	switch s {
	case BookingStatusApproved, BookingStatusHandoff, BookingStatusInUse, BookingStatusReturning:
		return true
	}
	return false
}

// Booking is one row of the booking ledger. Dates are calendar dates
// ("2006-01-02") forming the half-open range [StartDate, EndDate).
type Booking struct {
	ID            int64         `json:"id"`
	EquipmentID   int64         `json:"equipment_id"`
	RenterID      int64         `json:"renter_id"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Status        BookingStatus `json:"status"`
	DepositAmount *float64      `json:"deposit_amount,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
}

// OwnerRequest is a pending booking as seen by the equipment owner,
// joined with equipment and renter details.
type OwnerRequest struct {
	BookingID      int64  `json:"booking_id"`
	EquipmentID    int64  `json:"equipment_id"`
	EquipmentTitle string `json:"equipment_title"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Status         string `json:"status"`
	RenterName     string `json:"renter_name"`
	RenterEmail    string `json:"renter_email"`
}
