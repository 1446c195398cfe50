package user

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Role is the closed set of back-office roles. The source of truth for
// authorization checks is this enum, never a free-form string.
type Role int

const (
	// UnknownRole is the invalid zero value.
	UnknownRole Role = iota

	// Admin manages users and has full access.
	Admin

	// Courier is eligible for parcel assignment.
	Courier

	// Warehouse handles parcels inside facilities.
	Warehouse
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Courier:     "courier",
		Warehouse:   "warehouse",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:     "admin",
		Courier:   "courier",
		Warehouse: "warehouse",
	}
}

// ParseRole converts a stored or submitted string into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted role name. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
