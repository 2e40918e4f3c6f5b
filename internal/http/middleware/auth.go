package middleware

import (
	"context"
	"net/http"
	"strings"

	"placecell/internal/common"
	"placecell/internal/domain/user"
	"placecell/internal/http/response"
	"placecell/internal/security"
)

type contextKey string

const (
	ContextUserIDKey   contextKey = "user_id"
	ContextRoleKey     contextKey = "role"
	ContextUsernameKey contextKey = "username"
	ContextFullNameKey contextKey = "full_name"
)

type AuthMiddleware struct {
	jwt *security.JWTProvider
}

func NewAuthMiddleware(jwt *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// Authenticate rejects missing, malformed, invalid and expired tokens alike
// with 401; role checks downstream answer 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		userID, err := common.ParseUUID(claims.UserID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid user id", err))
			return
		}
		ctx := context.WithValue(r.Context(), ContextUserIDKey, userID)
		ctx = context.WithValue(ctx, ContextRoleKey, user.Role(strings.ToLower(strings.TrimSpace(claims.Role))))
		ctx = context.WithValue(ctx, ContextUsernameKey, claims.Username)
		ctx = context.WithValue(ctx, ContextFullNameKey, claims.FullName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole fails closed: no role in context, or a role outside the
// allowed set, is denied.
func RequireRole(roles ...user.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			activeRole, ok := r.Context().Value(ContextRoleKey).(user.Role)
			if !ok || activeRole == "" {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			for _, role := range roles {
				if activeRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func UserIDFromContext(ctx context.Context) (common.UUID, bool) {
	id, ok := ctx.Value(ContextUserIDKey).(common.UUID)
	return id, ok
}

func RoleFromContext(ctx context.Context) (user.Role, bool) {
	role, ok := ctx.Value(ContextRoleKey).(user.Role)
	return role, ok
}

func FullNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(ContextFullNameKey).(string)
	return name
}
