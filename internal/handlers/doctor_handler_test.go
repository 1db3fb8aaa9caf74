package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/stores"
)

const createDoctorBody = `{
	"email":"drnew@clinic.test",
	"password":"longenough",
	"firstName":"Nina",
	"lastName":"New",
	"specialization":"Cardiology",
	"licenseNumber":"LIC-42",
	"phone":"555-0102"
}`

func TestCreateDoctorDuplicateLicense(t *testing.T) {
	env := newTestEnv()
	env.doctors.On("FindByEmail", "drnew@clinic.test").Return(nil, stores.ErrNotFound)
	env.doctors.On("FindByLicense", "LIC-42").Return(&models.Doctor{ID: "d-1"}, nil)

	w := httptest.NewRecorder()
	env.h.CreateDoctor(postJSON(w, "/api/admin/doctors", createDoctorBody))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "License number already in use")
	env.doctors.AssertNotCalled(t, "Create")
}

func TestCreateDoctorConstraintBackstop(t *testing.T) {
	env := newTestEnv()
	env.doctors.On("FindByEmail", "drnew@clinic.test").Return(nil, stores.ErrNotFound)
	env.doctors.On("FindByLicense", "LIC-42").Return(nil, stores.ErrNotFound)
	env.doctors.On("Create", mock.AnythingOfType("*models.Doctor")).Return(gorm.ErrDuplicatedKey)

	w := httptest.NewRecorder()
	env.h.CreateDoctor(postJSON(w, "/api/admin/doctors", createDoctorBody))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateDoctorHashesPassword(t *testing.T) {
	env := newTestEnv()
	env.doctors.On("FindByEmail", "drnew@clinic.test").Return(nil, stores.ErrNotFound)
	env.doctors.On("FindByLicense", "LIC-42").Return(nil, stores.ErrNotFound)

	var created *models.Doctor
	env.doctors.On("Create", mock.AnythingOfType("*models.Doctor")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Doctor) }).
		Return(nil)

	w := httptest.NewRecorder()
	env.h.CreateDoctor(postJSON(w, "/api/admin/doctors", createDoctorBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.NotNil(t, created) {
		assert.NotEqual(t, "longenough", created.Password)
		assert.NotEmpty(t, created.Password)
		assert.True(t, created.IsActive)
	}
}

func TestUpdateDoctorNotFound(t *testing.T) {
	env := newTestEnv()
	env.doctors.On("Update", "missing", mock.Anything).Return(stores.ErrNotFound)

	w := httptest.NewRecorder()
	ctx := postJSON(w, "/api/admin/doctors/missing", createDoctorBody)
	ctx.Params = append(ctx.Params, gin.Param{Key: "id", Value: "missing"})

	env.h.UpdateDoctor(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Doctor not found")
}

func TestUpdateDoctorBlankPasswordUnchanged(t *testing.T) {
	env := newTestEnv()

	var updates map[string]interface{}
	env.doctors.On("Update", "d-1", mock.Anything).
		Run(func(args mock.Arguments) { updates = args.Get(1).(map[string]interface{}) }).
		Return(nil)

	body := `{
		"email":"drnew@clinic.test",
		"firstName":"Nina",
		"lastName":"New",
		"specialization":"Cardiology",
		"licenseNumber":"LIC-42"
	}`
	w := httptest.NewRecorder()
	ctx := postJSON(w, "/api/admin/doctors/d-1", body)
	ctx.Params = append(ctx.Params, gin.Param{Key: "id", Value: "d-1"})

	env.h.UpdateDoctor(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, updates) {
		_, hasPassword := updates["password"]
		assert.False(t, hasPassword)
	}
}
