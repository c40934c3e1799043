package handlers

import (
	"league-manager-system/middleware"
	"league-manager-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSeasonRoutes(app *fiber.App, seasonService *services.SeasonService) {
	// 🔐 All season routes act on the caller's own save
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/seasons", seasonService.CreateSeason)
	secured.Get("/seasons/me", seasonService.GetMySeason)
	secured.Delete("/seasons/me", seasonService.DeleteMySeason)

	// Round progression
	secured.Post("/seasons/me/advance", seasonService.AdvanceSeasonRound)

	// Read views over the current snapshot
	secured.Get("/seasons/me/standings", seasonService.GetStandings)
	secured.Get("/seasons/me/finances", seasonService.GetFinances)
}
