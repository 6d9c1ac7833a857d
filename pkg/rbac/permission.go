package rbac

// Rule describes a single entry in the permission table: who may perform
// resource:action.
type Rule struct {
	Resource string
	Action   string
	Roles    []Role
}

// Key returns the permission key for the rule ("resource:action").
func (r Rule) Key() string {
	return r.Resource + ":" + r.Action
}

// allows reports whether the role is in the rule's allowed set.
func (r Rule) allows(role Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

var allRoles = []Role{RoleAdmin, RoleManager, RoleDeveloper, RoleDesigner, RoleQa, RoleViewer}

// permissions is the full permission catalog. It is fixed at build time
// and never mutated at runtime.
var permissions = map[string]Rule{
	// Organization management
	"org:manage":   {Resource: "organization", Action: "manage", Roles: []Role{RoleAdmin}},
	"org:settings": {Resource: "organization", Action: "settings", Roles: []Role{RoleAdmin, RoleManager}},
	"org:view":     {Resource: "organization", Action: "view", Roles: allRoles},

	// User management
	"users:invite": {Resource: "users", Action: "invite", Roles: []Role{RoleAdmin, RoleManager}},
	"users:manage": {Resource: "users", Action: "manage", Roles: []Role{RoleAdmin}},
	"users:view":   {Resource: "users", Action: "view", Roles: []Role{RoleAdmin, RoleManager}},

	// Project management
	"projects:create": {Resource: "projects", Action: "create", Roles: []Role{RoleAdmin, RoleManager}},
	"projects:manage": {Resource: "projects", Action: "manage", Roles: []Role{RoleAdmin, RoleManager}},
	"projects:view":   {Resource: "projects", Action: "view", Roles: allRoles},

	// Issues and tasks
	"issues:create": {Resource: "issues", Action: "create", Roles: []Role{RoleAdmin, RoleManager, RoleDeveloper, RoleDesigner, RoleQa}},
	"issues:manage": {Resource: "issues", Action: "manage", Roles: []Role{RoleAdmin, RoleManager}},
	"issues:view":   {Resource: "issues", Action: "view", Roles: allRoles},
}

// HasPermission reports whether the role may perform the permission key.
// A nil role (unauthenticated caller or no active membership) and an
// unknown key both deny: the table fails closed rather than erroring.
func HasPermission(role *Role, key string) bool {
	if role == nil {
		return false
	}
	rule, ok := permissions[key]
	if !ok {
		return false
	}
	return rule.allows(*role)
}

// Lookup returns the rule for a permission key.
func Lookup(key string) (Rule, bool) {
	rule, ok := permissions[key]
	return rule, ok
}

// Keys returns all permission keys in the catalog.
func Keys() []string {
	keys := make([]string, 0, len(permissions))
	for key := range permissions {
		keys = append(keys, key)
	}
	return keys
}
