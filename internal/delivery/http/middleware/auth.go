package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/auth"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

const userIDKey = "userID"

// Authenticator проверяет bearer-токен
type Authenticator interface {
	Authenticate(token string) (*auth.Identity, error)
}

// Auth - middleware проверки bearer-токена. OPTIONS пропускается без проверки.
// Нет заголовка - 401, невалидный токен - 403.
func Auth(authenticator Authenticator, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		identity, err := authenticator.Authenticate(token)
		if err != nil {
			logger.Debug("Token rejected", zap.String("path", c.Path()), zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(userIDKey, identity.UserID)
		return c.Next()
	}
}

// UserID возвращает ID пользователя, установленный Auth
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
