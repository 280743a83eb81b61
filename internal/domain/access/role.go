// Package access implementa la resolución de permisos y roles del CRM
// (servicio de dominio puro: sin I/O, sin estado, nunca lanza pánico).
package access

// Role es un nivel dentro de la jerarquía fija de seniority.
type Role string

// Permission es una capacidad opaca que habilita una acción o módulo.
type Permission string

// Roles del sistema (conjunto cerrado, definido en build time).
const (
	RoleSales       Role = "Sales"
	RoleMarketing   Role = "Marketing"
	RoleTechSupport Role = "Tech Support"
	RoleAdmin       Role = "Admin"
)

// roleHierarchy ordena los roles por seniority ascendente (índice mayor = más
// permisos). El orden NO es alfabético: Marketing queda debajo de Tech Support
// y Admin, y chequeos como CanViewSensitiveData dependen de ese orden exacto.
var roleHierarchy = []Role{RoleSales, RoleMarketing, RoleTechSupport, RoleAdmin}

// rolePermissions mapea cada rol a su conjunto estático de permisos.
// Construido una sola vez; no existe ruta de mutación en runtime.
var rolePermissions = map[Role][]Permission{
	RoleSales: {
		"view_companies", "create_companies", "edit_companies",
		"view_catalog",
		"view_quotes", "create_quotes", "edit_quotes",
		"view_contracts",
		"view_tasks", "create_tasks", "edit_own_tasks",
		"view_tickets", "create_tickets",
	},
	RoleMarketing: {
		"view_companies", "edit_companies",
		"view_catalog",
		"view_quotes",
		"view_tasks", "create_tasks", "edit_own_tasks",
		"export_data",
	},
	RoleTechSupport: {
		"view_companies",
		"view_catalog",
		"view_contracts",
		"view_tickets", "create_tickets", "edit_tickets",
		"view_tasks", "create_tasks", "edit_own_tasks",
	},
	RoleAdmin: {
		"view_companies", "create_companies", "edit_companies", "delete_companies",
		"view_catalog", "edit_catalog",
		"view_quotes", "create_quotes", "edit_quotes", "delete_quotes",
		"view_contracts", "create_contracts", "edit_contracts",
		"view_invoices", "create_invoices", "edit_invoices",
		"view_tickets", "create_tickets", "edit_tickets",
		"view_tasks", "create_tasks", "edit_tasks", "delete_tasks",
		"view_users", "create_users", "edit_users",
		"manage_system_settings",
		"export_data",
	},
}

// modulePermissions mapea cada módulo funcional a su permiso representativo.
// Un módulo desconocido resuelve a false en CanAccessModule.
var modulePermissions = map[string]Permission{
	"companies": "view_companies",
	"catalog":   "view_catalog",
	"quotes":    "view_quotes",
	"contracts": "view_contracts",
	"invoices":  "view_invoices",
	"tickets":   "view_tickets",
	"tasks":     "view_tasks",
	"users":     "view_users",
	"settings":  "manage_system_settings",
}

// permissionsOf es un lookup total: rol desconocido devuelve slice vacío,
// nunca nil-panic ni error.
func permissionsOf(role Role) []Permission {
	return rolePermissions[role]
}

// roleIndex devuelve la posición del rol en la jerarquía o -1 si no existe.
func roleIndex(role Role) int {
	for i, r := range roleHierarchy {
		if r == role {
			return i
		}
	}
	return -1
}
