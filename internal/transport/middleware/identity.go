package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/eduveda/course-backend/pkg/ctxutil"
)

// Headers set by the API gateway after it has authenticated the caller.
const (
	UserIDHeader    = "X-Auth-User-Id"
	UserRolesHeader = "X-Auth-User-Roles"
)

// GatewayIdentity trusts the identity headers forwarded by the gateway.
// Tokens are never inspected here. A missing or malformed user id leaves
// the request anonymous; handlers that write reject it with 401.
func GatewayIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			ctx = ctxutil.WithUserID(ctx, id)
			if roles := parseRoles(r.Header.Get(UserRolesHeader)); len(roles) > 0 {
				ctx = ctxutil.WithRoles(ctx, roles)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseRoles(header string) []string {
	var roles []string
	for part := range strings.SplitSeq(header, ",") {
		if role := strings.TrimSpace(part); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
