package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/access"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func activeUser(role access.Role, perms ...access.Permission) *access.User {
	return &access.User{Role: role, Active: true, Permissions: perms}
}

func inactiveUser(role access.Role, perms ...access.Permission) *access.User {
	return &access.User{Role: role, Active: false, Permissions: perms}
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante universal: usuario inactivo nunca obtiene true
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarioInactivo_TodoChequeoEsFalse(t *testing.T) {
	// Incluso Admin con permisos explícitos: inactivo = sin permisos.
	u := inactiveUser(access.RoleAdmin, "export_data", "edit_tasks")

	assert.False(t, access.HasPermission(u, "view_quotes"))
	assert.False(t, access.HasPermission(u, "export_data"), "ni los permisos explícitos aplican a un inactivo")
	assert.False(t, access.HasRole(u, access.RoleAdmin))
	assert.False(t, access.HasMinimumRole(u, access.RoleSales))
	assert.False(t, access.CanAccessModule(u, "settings"))
	assert.False(t, access.CanPerformAction(u, "tasks", access.ActionUpdate, true))
	assert.False(t, access.CanViewSensitiveData(u))
	assert.False(t, access.CanExportData(u))
	assert.Empty(t, access.UserPermissions(u))
}

func TestUsuarioNil_TodoChequeoEsFalse(t *testing.T) {
	assert.False(t, access.HasPermission(nil, "view_quotes"))
	assert.False(t, access.HasRole(nil, access.RoleSales))
	assert.False(t, access.HasMinimumRole(nil, access.RoleSales))
	assert.False(t, access.CanAccessModule(nil, "quotes"))
	assert.False(t, access.CanPerformAction(nil, "quotes", access.ActionRead, false))
	assert.Empty(t, access.UserPermissions(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// HasPermission
// ──────────────────────────────────────────────────────────────────────────────

func TestHasPermission_DelRol(t *testing.T) {
	u := activeUser(access.RoleSales)
	assert.True(t, access.HasPermission(u, "create_quotes"))
	assert.False(t, access.HasPermission(u, "edit_tickets"), "Sales no edita tickets de soporte")
}

func TestHasPermission_ExplicitoSeUneAlRol(t *testing.T) {
	// Permiso explícito que el rol no tiene: se suma, nunca resta.
	u := activeUser(access.RoleSales, "export_data")
	assert.True(t, access.HasPermission(u, "export_data"))
	assert.True(t, access.HasPermission(u, "create_quotes"), "los del rol se conservan")
}

func TestHasPermission_RolDesconocidoEsFalse(t *testing.T) {
	u := activeUser(access.Role("Intern"))
	assert.False(t, access.HasPermission(u, "view_quotes"))
}

// ──────────────────────────────────────────────────────────────────────────────
// HasRole / HasMinimumRole
// ──────────────────────────────────────────────────────────────────────────────

func TestHasRole_MultiRol(t *testing.T) {
	u := activeUser(access.RoleMarketing)
	assert.True(t, access.HasRole(u, access.RoleSales, access.RoleMarketing))
	assert.False(t, access.HasRole(u, access.RoleAdmin, access.RoleTechSupport))
}

// La jerarquía fija es [Sales, Marketing, Tech Support, Admin]:
// mínimo Marketing debe aceptar Marketing, Tech Support y Admin, y rechazar Sales.
func TestHasMinimumRole_JerarquiaFija(t *testing.T) {
	cases := []struct {
		role access.Role
		want bool
	}{
		{access.RoleSales, false},
		{access.RoleMarketing, true},
		{access.RoleTechSupport, true},
		{access.RoleAdmin, true},
	}
	for _, tc := range cases {
		got := access.HasMinimumRole(activeUser(tc.role), access.RoleMarketing)
		assert.Equal(t, tc.want, got, "rol %s con mínimo Marketing", tc.role)
	}
}

func TestHasMinimumRole_RolFueraDeJerarquiaEsFalse(t *testing.T) {
	assert.False(t, access.HasMinimumRole(activeUser("Ghost"), access.RoleSales))
	assert.False(t, access.HasMinimumRole(activeUser(access.RoleAdmin), "Ghost"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessModule
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessModule(t *testing.T) {
	sales := activeUser(access.RoleSales)
	assert.True(t, access.CanAccessModule(sales, "quotes"))
	assert.False(t, access.CanAccessModule(sales, "settings"), "settings exige manage_system_settings")
	assert.False(t, access.CanAccessModule(sales, "nómina"), "módulo desconocido resuelve a false")

	admin := activeUser(access.RoleAdmin)
	assert.True(t, access.CanAccessModule(admin, "settings"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanPerformAction — convención de nombres y camino edit_own
// ──────────────────────────────────────────────────────────────────────────────

func TestCanPerformAction_ConvencionDePrefijos(t *testing.T) {
	admin := activeUser(access.RoleAdmin)
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionRead, false))   // view_tasks
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionUpdate, false)) // edit_tasks
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionCreate, false)) // create_tasks
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionDelete, false)) // delete_tasks
}

func TestCanPerformAction_EditOwnSoloAplicaAlDueno(t *testing.T) {
	// Sales tiene edit_own_tasks pero no edit_tasks.
	sales := activeUser(access.RoleSales)
	assert.True(t, access.CanPerformAction(sales, "tasks", access.ActionUpdate, true))
	assert.False(t, access.CanPerformAction(sales, "tasks", access.ActionUpdate, false),
		"sin ser dueño, edit_own no habilita la edición")
}

func TestCanPerformAction_EditGlobalNoRequiereSerDueno(t *testing.T) {
	admin := activeUser(access.RoleAdmin)
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionUpdate, false))
	// isOwner=true tampoco lo debilita.
	assert.True(t, access.CanPerformAction(admin, "tasks", access.ActionUpdate, true))
}

func TestCanPerformAction_EntradasInvalidas(t *testing.T) {
	admin := activeUser(access.RoleAdmin)
	assert.False(t, access.CanPerformAction(admin, "", access.ActionRead, false))
	assert.False(t, access.CanPerformAction(admin, "tasks", access.Action("approve"), false))
}

// ──────────────────────────────────────────────────────────────────────────────
// UserPermissions — idempotente e independiente del orden
// ──────────────────────────────────────────────────────────────────────────────

func TestUserPermissions_UnionDeduplicada(t *testing.T) {
	// export_data duplicado entre rol (Marketing) y explícito: una sola vez.
	u := activeUser(access.RoleMarketing, "export_data", "view_invoices")
	perms := access.UserPermissions(u)

	seen := make(map[access.Permission]int)
	for _, p := range perms {
		seen[p]++
	}
	assert.Equal(t, 1, seen["export_data"], "sin duplicados")
	assert.Equal(t, 1, seen["view_invoices"], "explícito incluido")
	assert.Equal(t, 1, seen["view_quotes"], "del rol incluido")
}

func TestUserPermissions_IndependienteDelOrden(t *testing.T) {
	a := activeUser(access.RoleSales, "export_data", "view_invoices")
	b := activeUser(access.RoleSales, "view_invoices", "export_data")

	assert.Equal(t, access.UserPermissions(a), access.UserPermissions(b))
	// Idempotente: dos llamadas sobre el mismo usuario dan lo mismo.
	assert.Equal(t, access.UserPermissions(a), access.UserPermissions(a))
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestPredicadosDerivados(t *testing.T) {
	assert.False(t, access.CanViewSensitiveData(activeUser(access.RoleSales)))
	assert.True(t, access.CanViewSensitiveData(activeUser(access.RoleMarketing)))

	assert.False(t, access.CanPerformBulkOperations(activeUser(access.RoleMarketing)))
	assert.True(t, access.CanPerformBulkOperations(activeUser(access.RoleTechSupport)))

	assert.True(t, access.CanExportData(activeUser(access.RoleMarketing)))
	assert.False(t, access.CanExportData(activeUser(access.RoleSales)))
	assert.True(t, access.CanExportData(activeUser(access.RoleSales, "export_data")),
		"el permiso explícito habilita la exportación")
}
