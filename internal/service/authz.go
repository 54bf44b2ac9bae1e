package service

import (
	"slices"

	"github.com/bnema/vitrine/internal/domain"
)

// AuthorizationGate decides whether a requester may mutate a record owned by
// someone. It has no side effects.
type AuthorizationGate struct {
	AllowedRoles []domain.Role
}

func NewAuthorizationGate(roles ...domain.Role) *AuthorizationGate {
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleAdmin}
	}
	return &AuthorizationGate{AllowedRoles: roles}
}

func (g *AuthorizationGate) Check(ownerID int64, req domain.Requester) error {
	if req.ID == ownerID {
		return nil
	}
	if req.Role != "" && slices.Contains(g.AllowedRoles, req.Role) {
		return nil
	}
	return domain.ErrForbidden
}
