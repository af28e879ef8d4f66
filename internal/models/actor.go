package models

type ActorRole string

const (
	RoleMember  ActorRole = "member"
	RoleTrainer ActorRole = "trainer"
	RoleAdmin   ActorRole = "admin"
	RoleSystem  ActorRole = "system"
)

// Actor identifies who initiated a booking mutation. System is reserved for
// inbound subsystem hooks such as payment confirmations.
type Actor struct {
	Role ActorRole `json:"role"`
	ID   uint      `json:"id"`
}

func ValidRole(r ActorRole) bool {
	switch r {
	case RoleMember, RoleTrainer, RoleAdmin, RoleSystem:
		return true
	}
	return false
}
