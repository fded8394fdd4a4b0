package domain

import "fmt"

// Role is the permission level of a user inside a room.
// Roles are ordered, a higher Rank grants everything a lower one does.
type Role int

const (
	RoleNone Role = iota
	RoleResidentDJ
	RoleBouncer
	RoleManager
	RoleCohost
	RoleHost
)

var roleNames = map[Role]string{
	RoleNone:       "NONE",
	RoleResidentDJ: "RESIDENT_DJ",
	RoleBouncer:    "BOUNCER",
	RoleManager:    "MANAGER",
	RoleCohost:     "COHOST",
	RoleHost:       "HOST",
}

// RoleFromCode maps the upstream role integer to a Role.
// The boolean is false when the code is outside the known range.
func RoleFromCode(code int) (Role, bool) {
	r := Role(code)
	if _, ok := roleNames[r]; !ok {
		return RoleNone, false
	}
	return r, true
}

// RoleFromName is the inverse of String, used by configuration.
func RoleFromName(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", name)
}

func (r Role) Rank() int { return int(r) }

// AtLeast reports whether r grants the permissions of min.
func (r Role) AtLeast(min Role) bool { return r.Rank() >= min.Rank() }

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Role(%d)", int(r))
}
