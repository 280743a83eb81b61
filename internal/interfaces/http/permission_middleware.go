package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/access"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Local key para el usuario efectivo resuelto por RequirePermission.
const LocalActor = "actor"

// userLookup es el contrato mínimo que necesita el middleware para cargar el
// estado fresco del usuario. Lo implementa *usecase.UserUseCase vía el repo;
// el uso de interfaz evita el import circular.
type userLookup interface {
	GetUser(id string) (*entity.User, error)
}

// RequirePermission devuelve un middleware Fiber que verifica que el usuario
// del token tenga el permiso indicado. Debe usarse DESPUÉS de AuthMiddleware.
//
// El usuario se carga de DB en cada request: un token válido de un usuario
// desactivado deja de servir de inmediato (usuarios inactivos no tienen
// ningún permiso).
//
// Comportamiento:
//   - 401 Unauthorized → sin user_id en contexto o usuario inexistente.
//   - 403 Forbidden    → usuario inactivo o sin el permiso.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequirePermission(permission string, lookup userLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		user, err := lookup.GetUser(userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar permisos, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado",
			})
		}

		actor := auth.AccessView(user)
		if !access.HasPermission(actor, access.Permission(permission)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tiene el permiso '" + permission + "'",
			})
		}

		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve la vista de permisos del usuario cargada por RequirePermission.
func GetActor(c *fiber.Ctx) *access.User {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	u, _ := v.(*access.User)
	return u
}
