package role

import "github.com/Allain-afk/GlamQueue-sub001/internal/httperr"

// ===============================
// User Roles
// ===============================

type Role string

const (
	Client  Role = "client"
	Staff   Role = "staff"
	Manager Role = "manager"
	Admin   Role = "admin"
)

// Parse maps a stored role string onto the closed set. Anything outside
// the set is rejected rather than treated as a client.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case Client, Staff, Manager, Admin:
		return Role(s), nil
	}
	return "", httperr.ErrBusiness("invalid_token")
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == Admin
}

// CanManageAppointments covers confirm, complete and cancel on the
// salon dashboard.
func (r Role) CanManageAppointments() bool {
	switch r {
	case Staff, Manager, Admin:
		return true
	}
	return false
}

// CanDeleteAppointments covers the hard delete on the salon dashboard.
func (r Role) CanDeleteAppointments() bool {
	return r == Admin
}

// CanManageCatalog covers service create and update.
func (r Role) CanManageCatalog() bool {
	switch r {
	case Manager, Admin:
		return true
	}
	return false
}
