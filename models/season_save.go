package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// SeasonStatus is the lifecycle state of a persisted save
type SeasonStatus string

const (
	SeasonActive    SeasonStatus = "active"
	SeasonCompleted SeasonStatus = "completed"
	SeasonAbandoned SeasonStatus = "abandoned"
)

// SeasonSave is the persisted season: one row per user, the snapshot
// stored as an opaque jsonb document. The denormalized columns exist so
// the scheduler and archive worker can query without unmarshalling.
type SeasonSave struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex;not null" json:"external_user_id"`

	TeamID   string `gorm:"not null" json:"team_id"`
	TeamName string `gorm:"not null" json:"team_name"`
	TeamSlug string `gorm:"index" json:"team_slug"`

	Status            SeasonStatus `gorm:"type:varchar(16);default:'active';index" json:"status"`
	CurrentRound      int          `gorm:"default:1" json:"current_round"`
	TotalRounds       int          `gorm:"default:0" json:"total_rounds"`
	LastArchivedRound int          `gorm:"default:0" json:"last_archived_round"`

	Snapshot json.RawMessage `gorm:"type:jsonb;not null" json:"snapshot"`

	Timestamps
}

// SeasonArchive records one uploaded snapshot copy (for replay/support)
type SeasonArchive struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SeasonSaveID string    `gorm:"index;not null" json:"season_save_id"`
	Round        int       `gorm:"not null" json:"round"`
	ObjectKey    string    `gorm:"not null" json:"object_key"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
