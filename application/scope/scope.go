package scope

import (
	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/utils/errors"
)

// Scope is the ownership constraint for one search.
type Scope struct {
	// Restricted limits rows to OwnerID. When false the caller sees every owner.
	Restricted bool
	OwnerID    uint64
}

// minimumRole is the least privileged role allowed to search an entity at all.
var minimumRole = map[constant.SearchEntity]constant.Role{
	constant.EntityMessages:      constant.RoleClient,
	constant.EntityCustomers:     constant.RoleClient,
	constant.EntityPayments:      constant.RoleClient,
	constant.EntitySubscriptions: constant.RoleClient,
	constant.EntityUsers:         constant.RoleManager,
}

// Resolve decides the ownership constraint for caller on entity.
// CLIENT callers are always restricted to their own rows; MANAGER and above
// search across owners.
func Resolve(caller model.Caller, entity constant.SearchEntity) (Scope, error) {
	if !caller.Role.Valid() || caller.UserID == 0 {
		return Scope{}, errors.SetCustomErrorDetail(constant.ErrForbidden, "unknown role")
	}

	minRole, ok := minimumRole[entity]
	if !ok {
		return Scope{}, errors.SetCustomErrorDetail(constant.ErrUnsupportedEntity, string(entity))
	}
	if !caller.Role.AtLeast(minRole) {
		return Scope{}, errors.SetCustomErrorDetail(constant.ErrForbidden, string(entity))
	}

	if caller.Role == constant.RoleClient {
		return Scope{Restricted: true, OwnerID: caller.UserID}, nil
	}
	return Scope{}, nil
}
