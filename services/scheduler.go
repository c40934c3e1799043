// services/scheduler.go
package services

import (
	"log"
	"time"

	"league-manager-system/models"

	"github.com/go-co-op/gocron/v2"
)

func (s *SeasonService) StartMaintenanceScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: close out seasons whose fixture has been fully played
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var saves []models.SeasonSave
			err := s.DB.Where("status = ? AND current_round > total_rounds", models.SeasonActive).
				Find(&saves).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, save := range saves {
				save.Status = models.SeasonCompleted
				if err := s.DB.Save(&save).Error; err != nil {
					log.Printf("[Scheduler] Failed to complete season %s: %v", save.ID, err)
				} else {
					log.Printf("✅ Season completed for team: %s", save.TeamName)
				}
			}
		}),
	)
}
