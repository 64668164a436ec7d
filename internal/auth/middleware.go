package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

const sessionKey = "auth_session"

// Middleware turns bearer tokens into explicit sessions on the request.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Optional resolves a session when a token is present and falls back to the
// guest session otherwise. Open routes (submit, browse, search) use this.
func (m *Middleware) Optional(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		c.Locals(sessionKey, domain.Guest())
		return c.Next()
	}
	return m.resolve(c, header)
}

// Require rejects requests without a valid token.
func (m *Middleware) Require(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return util.NewUnauthorized("missing authorization header")
	}
	return m.resolve(c, header)
}

func (m *Middleware) resolve(c *fiber.Ctx, header string) error {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewUnauthorized("invalid authorization header")
	}

	session, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// RequireAdmin gates the operations only the administrator may run: edit,
// delete, undo, export and account listing.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !session.IsAdmin {
			return util.NewForbidden("administrator access required")
		}
		return c.Next()
	}
}

// SessionFromContext retrieves the caller's session.
func SessionFromContext(c *fiber.Ctx) (domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return domain.Session{}, false
	}
	session, ok := val.(domain.Session)
	return session, ok
}
