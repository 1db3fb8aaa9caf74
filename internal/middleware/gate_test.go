package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/citycare/mydoctor-api/internal/middleware"
	"github.com/citycare/mydoctor-api/internal/session"
)

func TestDecide(t *testing.T) {
	anon := session.Session{}
	admin := session.Session{SubjectID: "u-1", SubjectType: session.SubjectUser, Role: "ADMIN"}
	staff := session.Session{SubjectID: "u-2", SubjectType: session.SubjectUser, Role: "STAFF"}
	patient := session.Session{SubjectID: "p-1", SubjectType: session.SubjectPatient, Role: "PATIENT"}
	doctor := session.Session{SubjectID: "d-1", SubjectType: session.SubjectDoctor, Role: "DOCTOR"}

	tests := []struct {
		name     string
		path     string
		s        session.Session
		present  bool
		allow    bool
		redirect string
	}{
		{"admin area, anonymous", "/admin/users", anon, false, false, "/admin-login?from=/admin/users"},
		{"admin area, patient", "/admin/users", patient, true, false, "/"},
		{"admin area, doctor", "/admin/users", doctor, true, false, "/"},
		{"admin area, admin", "/admin/users", admin, true, true, ""},
		{"admin area, staff", "/admin", staff, true, true, ""},
		{"admin login is outside the admin area", "/admin-login", anon, false, true, ""},
		{"admin login with trailing slash stays outside the admin area", "/admin-login/", anon, false, true, ""},

		{"doctor dashboard, anonymous", "/doctor/dashboard", anon, false, false, "/doctor/login"},
		{"doctor dashboard, doctor", "/doctor/dashboard", doctor, true, true, ""},
		{"doctor dashboard, admin", "/doctor/dashboard", admin, true, true, ""},
		{"doctor dashboard, patient", "/doctor/dashboard", patient, true, false, "/"},
		{"doctor dashboard subpath, anonymous", "/doctor/dashboard/schedule", anon, false, false, "/doctor/login"},

		{"login page, admin already signed in", "/login", admin, true, false, "/admin"},
		{"signup page, staff already signed in", "/signup", staff, true, false, "/admin"},
		{"patient login, patient already signed in", "/patient/login", patient, true, false, "/"},
		{"doctor login, doctor already signed in falls through", "/doctor/login", doctor, true, true, ""},
		{"login page, anonymous", "/login", anon, false, true, ""},

		{"public page, anonymous", "/", anon, false, true, ""},
		{"public page, doctor", "/doctors", doctor, true, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := middleware.Decide(tc.path, tc.s, tc.present)
			assert.Equal(t, tc.allow, d.Allow)
			assert.Equal(t, tc.redirect, d.RedirectTo)
		})
	}
}

func TestRouteGateRedirectsBeforeHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RouteGate())
	handlerRan := false
	r.GET("/admin/users", func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin-login?from=/admin/users", w.Header().Get("Location"))
	assert.False(t, handlerRan)
}

func TestRouteGateAllowsWithAdminCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RouteGate())
	r.GET("/admin/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieUserID, Value: "u-1"})
	req.AddCookie(&http.Cookie{Name: session.CookieUserRole, Value: "ADMIN"})
	req.AddCookie(&http.Cookie{Name: session.CookieUserType, Value: "user"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
