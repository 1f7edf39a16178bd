package middleware

import (
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromRequest(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireApprover admits roles that may resolve leave requests and submitted
// time entries.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || !role.CanApprove() {
			response.HandleError(w, user.ErrApproverRoleRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePeopleManager admits roles that may manage people records and the
// tenant catalogues.
func RequirePeopleManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || !role.CanManagePeople() {
			response.HandleError(w, user.ErrPeopleManagerRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin admits only the platform operator.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || !role.IsSuperAdmin() {
			response.HandleError(w, user.ErrSuperAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
