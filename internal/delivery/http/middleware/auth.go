package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/pkg/utils"
	"github.com/poi-explorer/internal/usecase"
)

const userIDKey = "user_id"

// Auth - middleware аутентификации по Bearer-токену. Проверенный
// user id кладётся в Locals; дальше core полностью доверяет ему.
func Auth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		user, err := authUC.VerifyToken(c.Context(), parts[1])
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(userIDKey, user.ID)
		return c.Next()
	}
}

// UserID достаёт id аутентифицированного пользователя из контекста запроса
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(userIDKey).(int64)
	return id
}
