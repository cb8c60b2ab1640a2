package models

// User is the authenticated account as asserted by the backend.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Address is a saved shipping address.
type Address struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Details string `json:"details"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}
