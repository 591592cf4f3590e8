package scope

import (
	"loomledger-backend/internal/domain/fault"
	"loomledger-backend/internal/domain/loom"
)

type Role string

const (
	RoleOwner            Role = "owner"
	RoleHandloomFactory  Role = "handloom_factory"
	RoleOutsideHandloom  Role = "outside_handloom"
	RolePowerloomFactory Role = "powerloom_factory"
	RoleOutsidePowerloom Role = "outside_powerloom"
)

// Caller is the identity context supplied by the (external) auth layer.
type Caller struct {
	UserID uint
	Role   Role
}

// Policy answers the two questions every scoped operation asks: which loom
// categories may this caller see, and may they touch this specific record.
// Built once per request via PolicyFor; no operation branches on the role
// string itself.
type Policy struct {
	owner      bool
	userID     uint
	categories []loom.Type
}

var roleCategory = map[Role]loom.Type{
	RoleHandloomFactory:  loom.TypeHandloom,
	RoleOutsideHandloom:  loom.TypeOutsideHandloom,
	RolePowerloomFactory: loom.TypePowerloom,
	RoleOutsidePowerloom: loom.TypeOutsidePowerloom,
}

// PolicyFor resolves the caller's role into a Policy. An unrecognized role
// is a hard denial (misconfigured account), never an empty result set.
func PolicyFor(c Caller) (*Policy, error) {
	if c.Role == RoleOwner {
		return &Policy{owner: true, userID: c.UserID, categories: loom.AllTypes()}, nil
	}
	cat, ok := roleCategory[c.Role]
	if !ok {
		return nil, fault.ErrUnauthorized
	}
	return &Policy{userID: c.UserID, categories: []loom.Type{cat}}, nil
}

func (p *Policy) IsOwner() bool { return p.owner }

func (p *Policy) UserID() uint { return p.userID }

// VisibleCategories returns the loom categories the caller may see in
// listings and grouped aggregations.
func (p *Policy) VisibleCategories() []loom.Type { return p.categories }

func (p *Policy) CategoryVisible(t loom.Type) bool {
	for _, c := range p.categories {
		if c == t {
			return true
		}
	}
	return false
}

// CanAccess gates direct by-id access to a record owned by ownerID.
// Non-owners only reach their own rows; callers of this must surface a
// NotFound on denial so existence is not revealed.
func (p *Policy) CanAccess(ownerID uint) bool {
	return p.owner || ownerID == p.userID
}

// OwnerFilter returns nil for the owner role (no restriction) and the
// caller's user id otherwise, for use as a repository query filter.
func (p *Policy) OwnerFilter() *uint {
	if p.owner {
		return nil
	}
	id := p.userID
	return &id
}
