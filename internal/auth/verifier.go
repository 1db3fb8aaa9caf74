package auth

import (
	"errors"
	"fmt"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
	"github.com/citycare/mydoctor-api/internal/utils"
)

// ErrInvalidCredentials covers both unknown email and wrong password so a
// login response never reveals which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Identity is the result of a successful credential check.
type Identity struct {
	SubjectID   string
	SubjectType string
	Role        models.Role
	Email       string
	Name        string
}

// Principal is the normalized view of a session's subject, shaped the same
// regardless of which table it came from.
type Principal struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	Phone string      `json:"phone"`
	Image string      `json:"image"`
}

// Verifier checks credentials against the three disjoint principal tables.
type Verifier struct {
	Users    stores.UserStore
	Doctors  stores.DoctorStore
	Patients stores.PatientStore
}

func NewVerifier(users stores.UserStore, doctors stores.DoctorStore, patients stores.PatientStore) *Verifier {
	return &Verifier{Users: users, Doctors: doctors, Patients: patients}
}

// Authenticate resolves an email/password pair. Lookup order is a fixed
// policy: staff users first, then doctors, then patients. An email hit
// short-circuits — a wrong password against the first matching table does not
// fall through to the next one, so cross-table email collisions always
// resolve to the earlier table.
func (v *Verifier) Authenticate(email, password string) (*Identity, error) {
	u, err := v.Users.FindByEmail(email)
	if err == nil {
		if !utils.CheckPasswordHash(password, u.Password) {
			return nil, ErrInvalidCredentials
		}
		return &Identity{
			SubjectID:   u.ID,
			SubjectType: session.SubjectUser,
			Role:        u.Role,
			Email:       u.Email,
			Name:        u.Name,
		}, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	d, err := v.Doctors.FindByEmail(email)
	if err == nil {
		if !utils.CheckPasswordHash(password, d.Password) {
			return nil, ErrInvalidCredentials
		}
		// DOCTOR is synthetic — the doctor table has no role column.
		return &Identity{
			SubjectID:   d.ID,
			SubjectType: session.SubjectDoctor,
			Role:        models.RoleDoctor,
			Email:       d.Email,
			Name:        d.FullName(),
		}, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, fmt.Errorf("doctor lookup: %w", err)
	}

	p, err := v.Patients.FindByEmail(email)
	if err == nil {
		if !utils.CheckPasswordHash(password, p.Password) {
			return nil, ErrInvalidCredentials
		}
		return &Identity{
			SubjectID:   p.ID,
			SubjectType: session.SubjectPatient,
			Role:        models.RolePatient,
			Email:       p.Email,
			Name:        p.FullName(),
		}, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, fmt.Errorf("patient lookup: %w", err)
	}

	return nil, ErrInvalidCredentials
}

// ResolvePrincipal loads the principal a session points at, dispatching on
// the subject type. Returns nil, nil when the id no longer resolves — a
// dangling session, surfaced to callers as "not authenticated" rather than a
// crash.
func (v *Verifier) ResolvePrincipal(s session.Session) (*Principal, error) {
	switch s.SubjectType {
	case session.SubjectUser:
		u, err := v.Users.GetByID(s.SubjectID)
		if errors.Is(err, stores.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("user lookup: %w", err)
		}
		return &Principal{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Phone: u.Phone, Image: u.Image}, nil

	case session.SubjectDoctor:
		d, err := v.Doctors.GetByID(s.SubjectID)
		if errors.Is(err, stores.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("doctor lookup: %w", err)
		}
		return &Principal{ID: d.ID, Email: d.Email, Name: d.FullName(), Role: models.RoleDoctor, Phone: d.Phone}, nil

	case session.SubjectPatient:
		p, err := v.Patients.GetByID(s.SubjectID)
		if errors.Is(err, stores.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("patient lookup: %w", err)
		}
		return &Principal{ID: p.ID, Email: p.Email, Name: p.FullName(), Role: models.RolePatient, Phone: p.Phone}, nil
	}

	return nil, nil
}
