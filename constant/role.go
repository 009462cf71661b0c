package constant

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleClient     Role = "CLIENT"
)

// roleRank orders roles by decreasing scope.
var roleRank = map[Role]int{
	RoleSuperAdmin: 4,
	RoleAdmin:      3,
	RoleManager:    2,
	RoleClient:     1,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r has at least the scope of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other] && r.Valid()
}
