package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/ports"
)

// UserIDHeader carries the authenticated caller's identity. Verifying the
// credential itself happens upstream (gateway, reverse proxy); this service
// trusts the header and only resolves the role.
const UserIDHeader = "X-User-ID"

const sessionContextKey = "comanda.session"

// SessionMiddleware resolves the caller's identity into a session.Session
// and stores it on the request context. Requests without a parsable user id
// are rejected; an unknown user still gets a session, with RoleUnknown.
func SessionMiddleware(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(UserIDHeader)
			if raw == "" {
				return writeError(c, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
			}

			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return writeError(c, http.StatusBadRequest, UserIDHeader+" is not a valid UUID")
			}

			role, err := identity.RoleOf(c.Request().Context(), userID)
			if err != nil {
				return writeError(c, http.StatusBadGateway, "identity provider unavailable")
			}

			sess, err := session.NewSession(userID, role)
			if err != nil {
				return writeError(c, http.StatusBadRequest, "invalid session identity")
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// sessionFrom retrieves the session placed by SessionMiddleware.
func sessionFrom(c echo.Context) (session.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(session.Session)
	return sess, ok
}
