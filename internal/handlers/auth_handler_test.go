package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/citycare/mydoctor-api/internal/handlers"
	"github.com/citycare/mydoctor-api/internal/mocks"
	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/services"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
)

type testEnv struct {
	h            *handlers.Handler
	users        *mocks.UserStore
	doctors      *mocks.DoctorStore
	patients     *mocks.PatientStore
	appointments *mocks.AppointmentStore
	records      *mocks.MedicalRecordStore
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		users:        new(mocks.UserStore),
		doctors:      new(mocks.DoctorStore),
		patients:     new(mocks.PatientStore),
		appointments: new(mocks.AppointmentStore),
		records:      new(mocks.MedicalRecordStore),
	}
	env.h = handlers.NewHandler(
		env.users, env.doctors, env.patients, env.appointments, env.records,
		session.NewManager(session.Config{}),
		services.NewNotificationService(""),
		[]byte("test-secret"),
	)
	return env
}

func postJSON(w *httptest.ResponseRecorder, path, body string) *gin.Context {
	ctx, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	return ctx
}

func hashPw(t *testing.T, pw string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestLoginSetsExactlyFourCookies(t *testing.T) {
	env := newTestEnv()
	env.users.On("FindByEmail", "admin@clinic.test").Return(&models.User{
		ID:       "u-1",
		Name:     "Alice Admin",
		Email:    "admin@clinic.test",
		Password: hashPw(t, "correct-pw!"),
		Role:     models.RoleAdmin,
	}, nil)

	w := httptest.NewRecorder()
	ctx := postJSON(w, "/login", `{"email":"admin@clinic.test","password":"correct-pw!"}`)

	env.h.Login(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 4)
	byName := map[string]string{}
	for _, ck := range cookies {
		byName[ck.Name] = ck.Value
	}
	assert.Equal(t, "u-1", byName[session.CookieUserID])
	assert.Equal(t, "ADMIN", byName[session.CookieUserRole])
	assert.Equal(t, "admin@clinic.test", byName[session.CookieUserEmail])
	assert.Equal(t, "user", byName[session.CookieUserType])

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp["token"])
}

// With no signing secret configured, login must still succeed as a pure
// cookie session — and must never answer an error while setting cookies.
func TestLoginWithoutTokenSecretIsCookieOnly(t *testing.T) {
	env := newTestEnv()
	env.h.JWTSecret = nil
	env.users.On("FindByEmail", "admin@clinic.test").Return(&models.User{
		ID:       "u-1",
		Email:    "admin@clinic.test",
		Password: hashPw(t, "correct-pw!"),
		Role:     models.RoleAdmin,
	}, nil)

	w := httptest.NewRecorder()
	env.h.Login(postJSON(w, "/login", `{"email":"admin@clinic.test","password":"correct-pw!"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Result().Cookies(), 4)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Empty(t, resp["token"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv()
	env.users.On("FindByEmail", "ghost@clinic.test").Return(nil, stores.ErrNotFound)
	env.doctors.On("FindByEmail", "ghost@clinic.test").Return(nil, stores.ErrNotFound)
	env.patients.On("FindByEmail", "ghost@clinic.test").Return(nil, stores.ErrNotFound)
	env.users.On("FindByEmail", "admin@clinic.test").Return(&models.User{
		ID:       "u-1",
		Email:    "admin@clinic.test",
		Password: hashPw(t, "right-pw"),
		Role:     models.RoleAdmin,
	}, nil)

	w1 := httptest.NewRecorder()
	env.h.Login(postJSON(w1, "/login", `{"email":"ghost@clinic.test","password":"anything"}`))

	w2 := httptest.NewRecorder()
	env.h.Login(postJSON(w2, "/login", `{"email":"admin@clinic.test","password":"wrong-pw"}`))

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.Empty(t, w1.Result().Cookies())
	assert.Empty(t, w2.Result().Cookies())
}

func TestSignupPasswordMismatch(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.h.Signup(postJSON(w, "/signup",
		`{"firstName":"Pam","lastName":"Patient","email":"pam@clinic.test","phone":"555-0101","password":"longenough","confirmPassword":"different!"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
	env.patients.AssertNotCalled(t, "Create")
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.patients.On("FindByEmail", "pam@clinic.test").Return(&models.Patient{ID: "p-1"}, nil)

	w := httptest.NewRecorder()
	env.h.Signup(postJSON(w, "/signup",
		`{"firstName":"Pam","lastName":"Patient","email":"pam@clinic.test","phone":"555-0101","password":"longenough","confirmPassword":"longenough"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
	env.patients.AssertNotCalled(t, "Create")
}

// Two concurrent signups can both pass the pre-check; the unique constraint
// rejects the loser and the handler still reports a clean conflict.
func TestSignupConstraintBackstop(t *testing.T) {
	env := newTestEnv()
	env.patients.On("FindByEmail", "pam@clinic.test").Return(nil, stores.ErrNotFound)
	env.patients.On("Create", mock.AnythingOfType("*models.Patient")).Return(gorm.ErrDuplicatedKey)

	w := httptest.NewRecorder()
	env.h.Signup(postJSON(w, "/signup",
		`{"firstName":"Pam","lastName":"Patient","email":"pam@clinic.test","phone":"555-0101","password":"longenough","confirmPassword":"longenough"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}

func TestLogoutTwiceLeavesNoSessionEitherTime(t *testing.T) {
	env := newTestEnv()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		env.h.Logout(postJSON(w, "/logout", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 4)
		for _, ck := range cookies {
			assert.Empty(t, ck.Value)
			assert.Negative(t, ck.MaxAge)
		}
	}
}

func TestMeDanglingSession(t *testing.T) {
	env := newTestEnv()
	env.users.On("GetByID", "gone").Return(nil, stores.ErrNotFound)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieUserID, Value: "gone"})
	req.AddCookie(&http.Cookie{Name: session.CookieUserType, Value: "user"})
	req.AddCookie(&http.Cookie{Name: session.CookieUserRole, Value: "ADMIN"})
	ctx.Request = req

	env.h.Me(ctx)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
