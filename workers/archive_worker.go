package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"league-manager-system/models"
	"league-manager-system/utils"

	"gorm.io/gorm"
)

// ArchiveClient uploads played-round snapshots to object storage so
// finished rounds stay retrievable after the save moves on.
type ArchiveClient struct {
	DB *gorm.DB
}

func NewArchiveClient(db *gorm.DB) *ArchiveClient {
	return &ArchiveClient{DB: db}
}

// PollArchives archives saves whose played rounds are ahead of their
// last archived round. One upload per save per tick keeps the loop cheap.
func PollArchives(ctx context.Context, client *ArchiveClient, pollInterval time.Duration) {
	log.Println("Starting snapshot archive polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot archive polling stopped.")
			return
		case <-ticker.C:
			var saves []models.SeasonSave
			err := client.DB.Where("current_round - 1 > last_archived_round").
				Find(&saves).Error
			if err != nil {
				log.Printf("❌ Error querying saves to archive: %v", err)
				continue
			}

			if len(saves) == 0 {
				continue
			}
			log.Printf("📥 Found %d save(s) with unarchived rounds.", len(saves))

			for _, save := range saves {
				if err := client.archiveSave(&save); err != nil {
					log.Printf("❌ Failed to archive save %s: %v", save.ID, err)
				}
			}
		}
	}
}

// archiveKey is the R2 object key for one save's round snapshot
func archiveKey(saveID string, round int) string {
	return fmt.Sprintf("archives/%s/round-%d.json", saveID, round)
}

// archiveTarget is the round an upload is labeled with: the latest played
// round, since only the current snapshot exists to upload. Rounds
// superseded between ticks are skipped rather than mislabeled.
func archiveTarget(save *models.SeasonSave) int {
	return save.CurrentRound - 1
}

func (c *ArchiveClient) archiveSave(save *models.SeasonSave) error {
	round := archiveTarget(save)
	key := archiveKey(save.ID, round)

	url, err := utils.UploadSnapshotToR2([]byte(save.Snapshot), key)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	return c.DB.Transaction(func(tx *gorm.DB) error {
		archive := models.SeasonArchive{
			SeasonSaveID: save.ID,
			Round:        round,
			ObjectKey:    key,
			URL:          url,
		}
		if err := tx.Create(&archive).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SeasonSave{}).
			Where("id = ?", save.ID).
			Update("last_archived_round", round).Error; err != nil {
			return err
		}
		log.Printf("✅ Archived round %d of save %s to %s", round, save.ID, key)
		return nil
	})
}
