package http

import (
	"errors"
	"net/http"
	"strings"

	"buyback/internal/core/application/usecases/commands"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Principal represents the authenticated caller extracted from the bearer
// token. Device identifies the login session; commands check it against the
// party's live session so a token from a superseded login stops working.
type Principal struct {
	Name   string
	Phone  string
	Role   commands.ActorRole
	Device string
}

// sessionClaims is the wire format of the session token payload.
type sessionClaims struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Device string `json:"device"`
	jwt.RegisteredClaims
}

// SessionMiddleware validates the Authorization bearer token and stores the
// resulting Principal on the request context.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := parseSessionToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// parseSessionToken validates the token signature and extracts the Principal.
func parseSessionToken(tokenStr, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("session secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Role == "" {
		return Principal{}, errors.New("invalid claims")
	}

	role := commands.ActorRole(strings.ToLower(claims.Role))
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		Name:   claims.Name,
		Phone:  claims.Phone,
		Role:   role,
		Device: claims.Device,
	}, nil
}

// principalFrom returns the Principal stored by SessionMiddleware.
func principalFrom(ctx echo.Context) (Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
	}
	return principal, nil
}

// requireAdmin ensures the caller is an administrator.
func requireAdmin(ctx echo.Context) (Principal, error) {
	principal, err := principalFrom(ctx)
	if err != nil {
		return Principal{}, err
	}
	if principal.Role != commands.RoleAdmin {
		return Principal{}, echo.NewHTTPError(http.StatusForbidden, "only admin can perform this action")
	}
	return principal, nil
}

// requirePartner ensures the caller is a partner.
func requirePartner(ctx echo.Context) (Principal, error) {
	principal, err := principalFrom(ctx)
	if err != nil {
		return Principal{}, err
	}
	if principal.Role != commands.RolePartner {
		return Principal{}, echo.NewHTTPError(http.StatusForbidden, "only partner can perform this action")
	}
	return principal, nil
}
