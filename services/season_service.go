package services

import (
	"encoding/json"
	"errors"
	"log"

	"league-manager-system/models"
	"league-manager-system/simulation"
	"league-manager-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type SeasonService struct {
	DB *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db}
}

// CreateSeason starts a new career save for the authenticated user.
// An active save blocks creation; completed or abandoned saves are replaced.
func (s *SeasonService) CreateSeason(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var body struct {
		TeamName    string `json:"team_name"`
		StadiumName string `json:"stadium_name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.TeamName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "team_name is required"})
	}

	var existing models.SeasonSave
	err := s.DB.Where("external_user_id = ?", userID).First(&existing).Error
	if err == nil && existing.Status == models.SeasonActive {
		return c.Status(409).JSON(fiber.Map{"error": "an active season already exists — delete it first"})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "DB lookup failed"})
	}

	seed, seedErr := utils.NewSeed()
	if seedErr != nil {
		log.Printf("❌ [SEASON] seed generation failed: %v", seedErr)
		return c.Status(500).JSON(fiber.Map{"error": "could not create season"})
	}

	teamID := uuid.NewString()
	snapshot := NewSeasonSnapshot(teamID, body.TeamName, body.StadiumName, seed)

	raw, marshalErr := json.Marshal(snapshot)
	if marshalErr != nil {
		log.Printf("❌ [SEASON] snapshot marshal failed for user %s: %v", userID, marshalErr)
		return c.Status(500).JSON(fiber.Map{"error": "could not create season"})
	}

	save := &models.SeasonSave{
		ID:             uuid.NewString(),
		ExternalUserID: userID,
		TeamID:         teamID,
		TeamName:       body.TeamName,
		TeamSlug:       slug.Make(body.TeamName),
		Status:         models.SeasonActive,
		CurrentRound:   snapshot.CurrentRound,
		TotalRounds:    snapshot.TotalRounds(),
		Snapshot:       raw,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if existing.ID != "" {
			if err := tx.Unscoped().Delete(&models.SeasonSave{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
		}
		return tx.Create(save).Error
	})
	if txErr != nil {
		log.Printf("❌ [SEASON] save create failed for user %s: %v", userID, txErr)
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}

	log.Printf("✅ [SEASON] New season created: user=%s team=%s (%d rounds)", userID, body.TeamName, save.TotalRounds)
	return c.Status(201).JSON(save)
}

// GetMySeason returns the caller's save, snapshot included
func (s *SeasonService) GetMySeason(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var save models.SeasonSave
	if err := s.DB.Where("external_user_id = ?", userID).First(&save).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "no season save found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB lookup failed"})
	}
	return c.JSON(save)
}

// DeleteMySeason abandons and removes the caller's save
func (s *SeasonService) DeleteMySeason(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	result := s.DB.Unscoped().Where("external_user_id = ?", userID).Delete(&models.SeasonSave{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "no season save found"})
	}

	log.Printf("🗑️ [SEASON] Save deleted for user %s", userID)
	return c.SendStatus(204)
}

// AdvanceSeasonRound plays out the current round: the caller supplies the
// result of their own match, everything else is simulated.
func (s *SeasonService) AdvanceSeasonRound(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var body struct {
		UserMatchResult *models.UserMatchResult `json:"user_match_result"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	var save models.SeasonSave
	if err := s.DB.Where("external_user_id = ?", userID).First(&save).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "no season save found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB lookup failed"})
	}
	if save.Status != models.SeasonActive {
		return c.Status(409).JSON(fiber.Map{"error": "season is not active"})
	}

	var snapshot models.SeasonSnapshot
	if err := json.Unmarshal(save.Snapshot, &snapshot); err != nil {
		log.Printf("❌ [SEASON] snapshot unmarshal failed for save %s: %v", save.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "could not advance round"})
	}

	seed, err := utils.NewSeed()
	if err != nil {
		log.Printf("❌ [SEASON] seed generation failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "could not advance round"})
	}

	next, err := simulation.AdvanceRound(simulation.AdvanceInput{
		Snapshot:   snapshot,
		UserResult: body.UserMatchResult,
		Seed:       seed,
	})
	if err != nil {
		switch {
		case errors.Is(err, simulation.ErrMissingUserResult),
			errors.Is(err, simulation.ErrUnexpectedUserResult):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			// Fatal simulation errors stay internal: the caller gets a
			// single generic condition, the log gets the cause.
			log.Printf("❌ [SEASON] advance failed for save %s (round %d, seed %d): %v", save.ID, snapshot.CurrentRound, seed, err)
			return c.Status(500).JSON(fiber.Map{"error": "could not advance round"})
		}
	}

	raw, marshalErr := json.Marshal(&next)
	if marshalErr != nil {
		log.Printf("❌ [SEASON] snapshot marshal failed for save %s: %v", save.ID, marshalErr)
		return c.Status(500).JSON(fiber.Map{"error": "could not advance round"})
	}

	// Optimistic write: the update only lands if the save is still on the
	// round we simulated, so concurrent advances cannot both commit.
	result := s.DB.Model(&models.SeasonSave{}).
		Where("id = ? AND current_round = ?", save.ID, snapshot.CurrentRound).
		Updates(advanceUpdates(&next, raw))
	if result.Error != nil {
		log.Printf("❌ [SEASON] save update failed for save %s: %v", save.ID, result.Error)
		return c.Status(500).JSON(fiber.Map{"error": "could not advance round"})
	}
	if result.RowsAffected == 0 {
		log.Printf("⚠️ [SEASON] round %d of save %s already advanced concurrently", snapshot.CurrentRound, save.ID)
		return c.Status(409).JSON(fiber.Map{"error": "round already advanced by a concurrent request"})
	}

	save.Snapshot = raw
	save.CurrentRound = next.CurrentRound
	if next.Finished() {
		save.Status = models.SeasonCompleted
	}

	log.Printf("✅ [SEASON] Round %d played for user %s (seed %d)", snapshot.CurrentRound, userID, seed)
	return c.JSON(save)
}

// advanceUpdates is the column set persisted after a round advance
func advanceUpdates(next *models.SeasonSnapshot, raw json.RawMessage) map[string]interface{} {
	updates := map[string]interface{}{
		"snapshot":      raw,
		"current_round": next.CurrentRound,
	}
	if next.Finished() {
		updates["status"] = models.SeasonCompleted
	}
	return updates
}

// GetStandings returns the current standings tables from the save
func (s *SeasonService) GetStandings(c *fiber.Ctx) error {
	snapshot, ok := s.loadSnapshot(c)
	if !ok {
		return nil
	}
	return c.JSON(fiber.Map{
		"groups":    snapshot.StandingGroups,
		"standings": snapshot.Standings,
	})
}

// GetFinances returns the club ledger and merchandising catalog
func (s *SeasonService) GetFinances(c *fiber.Ctx) error {
	snapshot, ok := s.loadSnapshot(c)
	if !ok {
		return nil
	}
	return c.JSON(fiber.Map{
		"finances":      snapshot.Finances,
		"merchandising": snapshot.Merchandising,
	})
}

// loadSnapshot fetches and decodes the caller's snapshot. On failure the
// error response has already been written and ok is false.
func (s *SeasonService) loadSnapshot(c *fiber.Ctx) (*models.SeasonSnapshot, bool) {
	userID, _ := c.Locals("user_id").(string)

	var save models.SeasonSave
	if err := s.DB.Where("external_user_id = ?", userID).First(&save).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = c.Status(404).JSON(fiber.Map{"error": "no season save found"})
		} else {
			_ = c.Status(500).JSON(fiber.Map{"error": "DB lookup failed"})
		}
		return nil, false
	}

	var snapshot models.SeasonSnapshot
	if err := json.Unmarshal(save.Snapshot, &snapshot); err != nil {
		log.Printf("❌ [SEASON] snapshot unmarshal failed for save %s: %v", save.ID, err)
		_ = c.Status(500).JSON(fiber.Map{"error": "corrupt season snapshot"})
		return nil, false
	}
	return &snapshot, true
}
