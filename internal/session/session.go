package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names making up one session. The four values are always written and
// cleared together — the cookie set is the session, there is no server-side
// store.
const (
	CookieUserID    = "user_id"
	CookieUserRole  = "user_role"
	CookieUserEmail = "user_email"
	CookieUserType  = "user_type"
)

// Subject types: which principal table a session's subject id resolves
// against.
const (
	SubjectUser    = "user"
	SubjectDoctor  = "doctor"
	SubjectPatient = "patient"
)

// DefaultTTL is the fixed session lifetime. There is no rotation or sliding
// expiration; expiry and logout are the only revocation paths.
const DefaultTTL = 7 * 24 * time.Hour

// Session is the decoded cookie snapshot of an authenticated principal.
type Session struct {
	SubjectID   string
	SubjectType string
	Role        string
	Email       string
}

// Config controls cookie attributes. Secure is tied to the production
// environment switch.
type Config struct {
	TTL    time.Duration
	Secure bool
}

// Manager issues and clears session cookie sets.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{cfg: cfg}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.cfg.TTL
}

// Issue writes the four session cookies as a set. All share the same TTL and
// are httpOnly + SameSite=Lax.
func (m *Manager) Issue(c *gin.Context, s Session) {
	maxAge := int(m.cfg.TTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieUserID, s.SubjectID, maxAge, "/", "", m.cfg.Secure, true)
	c.SetCookie(CookieUserRole, s.Role, maxAge, "/", "", m.cfg.Secure, true)
	c.SetCookie(CookieUserEmail, s.Email, maxAge, "/", "", m.cfg.Secure, true)
	c.SetCookie(CookieUserType, s.SubjectType, maxAge, "/", "", m.cfg.Secure, true)
}

// Clear removes the session cookie set. Safe to call when no session exists.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	for _, name := range []string{CookieUserID, CookieUserRole, CookieUserEmail, CookieUserType} {
		c.SetCookie(name, "", -1, "/", "", m.cfg.Secure, true)
	}
}

// FromRequest decodes the cookie snapshot. A session is considered present
// when the subject id cookie is set.
func FromRequest(r *http.Request) (Session, bool) {
	s := Session{
		SubjectID:   cookieValue(r, CookieUserID),
		SubjectType: cookieValue(r, CookieUserType),
		Role:        cookieValue(r, CookieUserRole),
		Email:       cookieValue(r, CookieUserEmail),
	}
	return s, s.SubjectID != ""
}

func cookieValue(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
