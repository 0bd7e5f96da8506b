package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models the authenticated account as returned by the backend.
// Role is derived from the staff flag, never stored independently.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	Role    string `json:"role,omitempty"`
}

// DeriveRole fills Role from the staff flag.
func (u *User) DeriveRole() {
	if u.IsStaff {
		u.Role = RoleAdmin
	} else {
		u.Role = RoleCustomer
	}
}

// Admin reports whether the user may perform admin-only operations.
func (u *User) Admin() bool {
	return u != nil && (u.IsStaff || u.Role == RoleAdmin)
}
