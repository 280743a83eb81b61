package access

import "sort"

// User es la vista de solo lectura que el resolver necesita del usuario
// autenticado. La construye el caller (middleware HTTP, tests); este paquete
// nunca la muta ni la refresca.
//
// Invariante universal: con Active == false ningún chequeo devuelve true,
// sin importar el rol ni los permisos explícitos.
type User struct {
	Role        Role
	Active      bool
	Permissions []Permission // permisos explícitos por usuario (unión, nunca resta)
}

// Action es una operación CRUD sobre una entidad.
type Action string

// Acciones soportadas por CanPerformAction.
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// HasPermission informa si el usuario tiene el permiso, sea explícito o
// derivado de su rol. Usuario nil/inactivo o rol desconocido degradan a false.
func HasPermission(u *User, p Permission) bool {
	if u == nil || !u.Active || p == "" {
		return false
	}
	for _, ep := range u.Permissions {
		if ep == p {
			return true
		}
	}
	for _, rp := range permissionsOf(u.Role) {
		if rp == p {
			return true
		}
	}
	return false
}

// HasRole informa si el rol del usuario está entre los indicados.
func HasRole(u *User, roles ...Role) bool {
	if u == nil || !u.Active {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// HasMinimumRole informa si el rol del usuario alcanza al menos la seniority
// del rol indicado según la jerarquía fija. Roles fuera de la jerarquía
// resuelven a false.
func HasMinimumRole(u *User, min Role) bool {
	if u == nil || !u.Active {
		return false
	}
	userIdx := roleIndex(u.Role)
	minIdx := roleIndex(min)
	if userIdx < 0 || minIdx < 0 {
		return false
	}
	return userIdx >= minIdx
}

// CanAccessModule informa si el usuario puede entrar al módulo funcional.
// Módulo desconocido resuelve a false.
func CanAccessModule(u *User, module string) bool {
	perm, ok := modulePermissions[module]
	if !ok {
		return false
	}
	return HasPermission(u, perm)
}

// CanPerformAction resuelve el permiso por convención de nombres:
// read → view_<entity>, update → edit_<entity>, create/delete → <action>_<entity>.
// Si isOwner y la acción es update, basta edit_own_<entity> como camino
// alternativo (más débil, no reemplaza a edit_<entity>).
func CanPerformAction(u *User, entityName string, action Action, isOwner bool) bool {
	if entityName == "" {
		return false
	}
	var prefix string
	switch action {
	case ActionRead:
		prefix = "view_"
	case ActionUpdate:
		prefix = "edit_"
	case ActionCreate:
		prefix = "create_"
	case ActionDelete:
		prefix = "delete_"
	default:
		return false
	}
	if isOwner && action == ActionUpdate {
		if HasPermission(u, Permission("edit_own_"+entityName)) {
			return true
		}
	}
	return HasPermission(u, Permission(prefix+entityName))
}

// UserPermissions devuelve la unión deduplicada de permisos del rol y
// explícitos, ordenada para que el resultado no dependa del orden de
// inserción. Usuario nil/inactivo devuelve vacío.
func UserPermissions(u *User) []Permission {
	if u == nil || !u.Active {
		return nil
	}
	seen := make(map[Permission]struct{})
	for _, p := range permissionsOf(u.Role) {
		seen[p] = struct{}{}
	}
	for _, p := range u.Permissions {
		if p != "" {
			seen[p] = struct{}{}
		}
	}
	out := make([]Permission, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ── Predicados derivados ──────────────────────────────────────────────────────
// Definidos solo en términos de las primitivas anteriores; no codifican
// lógica propia.

// CanViewSensitiveData: datos sensibles requieren seniority Marketing o superior.
func CanViewSensitiveData(u *User) bool {
	return HasMinimumRole(u, RoleMarketing)
}

// CanPerformBulkOperations: operaciones masivas requieren Tech Support o superior.
func CanPerformBulkOperations(u *User) bool {
	return HasMinimumRole(u, RoleTechSupport)
}

// CanExportData: exportar requiere el permiso export_data (de rol o explícito).
func CanExportData(u *User) bool {
	return HasPermission(u, "export_data")
}
