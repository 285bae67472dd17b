package constants

import "fmt"

const (
	RoleRecruiter  = "recruiter"
	RoleManagement = "management"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "Only recruiters, management or admins may access %s."
	ErrOnlyAdminsCanAccess = "Only management or admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleRecruiter,
		RoleManagement,
		RoleAdmin,
	}

	ManagementAndAbove = []string{
		RoleManagement,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
