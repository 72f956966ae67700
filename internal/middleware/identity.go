package middleware

// identity.go holds the context keys the auth middleware writes and the
// accessors handlers and other middleware read them with.

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	ctxActorKey     = "actor_id"
	ctxRoleKey      = "role"
	ctxRequestIDKey = "request_id"
)

// Roles carried in the token's role claim.
const (
	RoleAdmin    = "ADMIN"
	RoleOwner    = "OWNER"
	RoleCustomer = "CUSTOMER"
	RoleInternal = "INTERNAL"
)

// ActorID returns the authenticated caller set by JWTAuth.
func ActorID(c echo.Context) (string, bool) {
	s, ok := c.Get(ctxActorKey).(string)
	return s, ok && s != ""
}

// Role returns the caller's upper-cased role claim, or "".
func Role(c echo.Context) string {
	s, _ := c.Get(ctxRoleKey).(string)
	return s
}

// IsAdmin reports whether the caller may administer inventory.
func IsAdmin(c echo.Context) bool {
	switch Role(c) {
	case RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// RequestID returns the id assigned by RequestLogger.
func RequestID(c echo.Context) string {
	s, _ := c.Get(ctxRequestIDKey).(string)
	return s
}

// subjectString renders a sub claim as a string.  JSON numbers decode as
// float64, so integral values are printed without a fraction.
func subjectString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t >= 0 && t == math.Trunc(t) && t < math.MaxInt64 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// actorOrAnon is the rate-limit identity of the caller.
func actorOrAnon(c echo.Context) string {
	if id, ok := ActorID(c); ok {
		return id
	}
	return "anon"
}
