package models

// ActorRole identifies which side of an appointment an authenticated
// actor is on. The role decides which lifecycle operations are permitted.
type ActorRole string

const (
	RolePatient  ActorRole = "patient"
	RoleProvider ActorRole = "provider"
)

// IsValid reports whether r is a known role.
func (r ActorRole) IsValid() bool {
	return r == RolePatient || r == RoleProvider
}
