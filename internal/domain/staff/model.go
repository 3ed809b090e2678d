package staff

import "fmt"

// Roles offered by the console when adding staff.
const (
	RoleReceptionist = "Receptionist"
	RoleNurse        = "Nurse"
	RoleManagement   = "Management Staff"
)

// Staff maps to one entry of staff.json.
type Staff struct {
	ID           int    `json:"staff_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ShiftTimings string `json:"shift_timings"`
}

func (s Staff) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Role: %s, Shift: %s",
		s.ID, s.Name, s.Role, s.ShiftTimings)
}
