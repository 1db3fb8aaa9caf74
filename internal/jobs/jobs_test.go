package jobs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/citycare/mydoctor-api/internal/jobs"
	"github.com/citycare/mydoctor-api/internal/mocks"
)

func TestSweepNoShowsUsesDayOldCutoff(t *testing.T) {
	appointments := new(mocks.AppointmentStore)
	appointments.On("MarkNoShows", mock.MatchedBy(func(cutoff time.Time) bool {
		age := time.Since(cutoff)
		return age > 23*time.Hour && age < 25*time.Hour
	})).Return(int64(3), nil)

	jobs.SweepNoShows(appointments)

	appointments.AssertExpectations(t)
}

func TestSweepNoShowsSurvivesStoreError(t *testing.T) {
	appointments := new(mocks.AppointmentStore)
	appointments.On("MarkNoShows", mock.Anything).Return(int64(0), assert.AnError)

	assert.NotPanics(t, func() { jobs.SweepNoShows(appointments) })
}

func TestStartDailySchedulerRegistersJob(t *testing.T) {
	appointments := new(mocks.AppointmentStore)

	c := jobs.StartDailyScheduler(appointments)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
