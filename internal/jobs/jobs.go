package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/citycare/mydoctor-api/internal/stores"
)

// StartDailyScheduler runs the nightly maintenance jobs. Currently that is
// the no-show sweep: SCHEDULED appointments more than a day in the past are
// flipped to NO_SHOW — nothing else ever writes that status.
func StartDailyScheduler(appointments stores.AppointmentStore) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("30 0 * * *", func() {
		SweepNoShows(appointments)
	}); err != nil {
		log.Println("jobs: could not schedule no-show sweep:", err)
		return c
	}

	c.Start()
	return c
}

// SweepNoShows marks stale SCHEDULED appointments as NO_SHOW. Exposed so the
// scheduler and an operator-triggered run share one code path.
func SweepNoShows(appointments stores.AppointmentStore) {
	cutoff := time.Now().Add(-24 * time.Hour)
	n, err := appointments.MarkNoShows(cutoff)
	if err != nil {
		log.Println("jobs: no-show sweep failed:", err)
		return
	}
	if n > 0 {
		log.Printf("jobs: marked %d appointments as no-show", n)
	}
}
