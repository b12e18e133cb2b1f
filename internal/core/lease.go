package core

import "time"

// LeaseStatus is the result of checking an actor against the tenant registry.
type LeaseStatus string

const (
	LeaseNotATenant LeaseStatus = "not_a_tenant"
	LeaseExpired    LeaseStatus = "expired"
	LeaseInactive   LeaseStatus = "inactive"
	LeaseActive     LeaseStatus = "active"
)

// Role of an actor as resolved at session time.
type Role string

const (
	RoleSuperuser Role = "superuser"
	RoleTenant    Role = "tenant"
	RoleUser      Role = "user"
)

// LeaseStatusOf classifies a lease window at a given instant. Expired is
// reported only while the stored active flag still says true: the caller
// persists the deactivation (read-time or sweep), after which the same lapsed
// tenant classifies as Inactive. The superuser never classifies as expired.
func LeaseStatusOf(active, isSuperuser bool, expiresAt time.Time, now time.Time) LeaseStatus {
	if !active {
		return LeaseInactive
	}
	if !isSuperuser && now.After(expiresAt) {
		return LeaseExpired
	}
	return LeaseActive
}
