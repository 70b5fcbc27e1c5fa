package jobs

import (
	"context"
	"log"

	ucSchedule "github.com/bodyharmony/salon-scheduler/internal/usecase/schedule"
)

// CompletePastAppointments runs the completion sweep. Registered on a cron
// schedule in main; replaces completing appointments as a side effect of
// listing them.
func CompletePastAppointments(sweep *ucSchedule.CompleteSweep) {
	n, err := sweep.Execute(context.Background())
	if err != nil {
		log.Printf("completion sweep error: %v", err)
		return
	}

	if n > 0 {
		log.Printf("completion sweep: %d appointment(s) completed", n)
	}
}
