package domain

// User is the minimal renter/owner projection the booking core needs. The
// full profile lives in the accounts component.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
