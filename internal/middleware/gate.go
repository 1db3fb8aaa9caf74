package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/session"
)

// Decision is the outcome of the route gate: either the request proceeds or
// the browser is sent elsewhere.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// Pages that only make sense for unauthenticated visitors.
var authPages = map[string]bool{
	"/login":         true,
	"/signup":        true,
	"/patient/login": true,
	"/doctor/login":  true,
	"/admin-login":   true,
}

// Decide is the pure route-authorization function, evaluated against the
// cookie snapshot before any page is rendered. Rules apply in order:
//
//  1. Admin area (anything starting with /admin except /admin-login):
//     requires a session whose role is neither PATIENT nor DOCTOR. Anonymous
//     visitors are sent to the admin login with the original path preserved.
//  2. Doctor dashboard: requires a doctor session, or an ADMIN.
//  3. Auth pages while already signed in: admins and staff go to /admin,
//     patients go to /. A signed-in doctor may revisit these pages.
//  4. Everything else is public.
func Decide(path string, s session.Session, present bool) Decision {
	if strings.HasPrefix(path, "/admin") && !strings.HasPrefix(path, "/admin-login") {
		if !present {
			return redirect("/admin-login?from=" + path)
		}
		if s.Role == string(models.RolePatient) || s.Role == string(models.RoleDoctor) {
			return redirect("/")
		}
		return allow()
	}

	if strings.HasPrefix(path, "/doctor/dashboard") {
		if !present {
			return redirect("/doctor/login")
		}
		if s.SubjectType != session.SubjectDoctor && s.Role != string(models.RoleAdmin) {
			return redirect("/")
		}
		return allow()
	}

	if authPages[path] && present {
		switch s.Role {
		case string(models.RoleAdmin), string(models.RoleStaff):
			return redirect("/admin")
		case string(models.RolePatient):
			return redirect("/")
		}
	}

	return allow()
}

// RouteGate applies Decide to every request before page handlers run. It is
// stateless; the only side effect is the redirect itself.
func RouteGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, present := session.FromRequest(c.Request)
		d := Decide(c.Request.URL.Path, s, present)
		if !d.Allow {
			c.Redirect(http.StatusFound, d.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
