package middleware

import (
	"context"
	"net/http"
	"strings"

	"sarrisk/internal/service"
)

type contextKey string

const (
	CoordinatorIDKey contextKey = "coordinatorId"
	TeamIDKey        contextKey = "teamId"
	TeamNameKey      contextKey = "teamName"
	MissionCodeKey   contextKey = "missionCode"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCoordinator validates a coordinator JWT from the Authorization header
func (m *AuthMiddleware) RequireCoordinator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCoordinatorToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), CoordinatorIDKey, claims.CoordinatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireTeam validates a team JWT from the Authorization header
func (m *AuthMiddleware) RequireTeam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateTeamToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, TeamIDKey, claims.TeamID)
		ctx = context.WithValue(ctx, TeamNameKey, claims.TeamName)
		ctx = context.WithValue(ctx, MissionCodeKey, claims.MissionCode)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCoordinatorID extracts the coordinator ID from context
func GetCoordinatorID(ctx context.Context) string {
	return stringValue(ctx, CoordinatorIDKey)
}

// GetTeamID extracts the team ID from context
func GetTeamID(ctx context.Context) string {
	return stringValue(ctx, TeamIDKey)
}

// GetTeamName extracts the team name from context
func GetTeamName(ctx context.Context) string {
	return stringValue(ctx, TeamNameKey)
}

// GetMissionCode extracts the mission code from context
func GetMissionCode(ctx context.Context) string {
	return stringValue(ctx, MissionCodeKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
