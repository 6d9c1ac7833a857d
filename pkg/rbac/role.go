package rbac

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform lower -json -sql -output role.gen.go

// Role is one of the fixed organization roles. The set is known at
// compile time and is not user-extensible.
type Role int

const (
	RoleAdmin Role = iota
	RoleManager
	RoleDeveloper
	RoleDesigner
	RoleQa
	RoleViewer
)

// roleRanks orders roles for management decisions. Developer, designer
// and qa intentionally share a rank: none of them may manage the others.
var roleRanks = map[Role]int{
	RoleAdmin:     5,
	RoleManager:   4,
	RoleDeveloper: 3,
	RoleDesigner:  3,
	RoleQa:        3,
	RoleViewer:    1,
}

// Rank returns the hierarchy rank of the role. Unknown roles rank 0.
func (r Role) Rank() int {
	return roleRanks[r]
}

// CanManage reports whether the acting role may administratively act on
// the target role (change its role, suspend it). The comparison is a
// strict greater-than: a role can never manage a peer of equal rank,
// including itself.
func CanManage(acting, target Role) bool {
	return acting.Rank() > target.Rank()
}
