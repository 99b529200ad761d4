package models

import "github.com/google/uuid"

type Role string

const (
	RoleClient     Role = "client"
	RoleProducteur Role = "producteur"
	RoleAdmin      Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleProducteur, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Principal is the authenticated identity asserted by the upstream
// session layer. The service trusts it as-is.
type Principal struct {
	UUID uuid.UUID
	Role Role
}
