package controllers

import (
	"crypto/subtle"
	"log"
	"os"

	"kaloltsavam-backend/results"

	"github.com/gofiber/fiber/v2"
)

// ResultsController serves the public, read-only results lookup.
type ResultsController struct {
	Store results.Store
}

func NewResultsController(store results.Store) *ResultsController {
	return &ResultsController{Store: store}
}

// GetResults handles GET /results?search=&event=&category=. The anonymous read
// path is gated by an API key header rather than a user session. Every call is
// a fresh read against the store.
func (rc *ResultsController) GetResults(c *fiber.Ctx) error {
	apiKey := os.Getenv("ANON_API_KEY")
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(c.Get("X-API-Key")), []byte(apiKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid API key"})
	}

	filters := results.Filters{
		Search:   c.Query("search"),
		Event:    c.Query("event"),
		Category: c.Query("category"),
	}

	found, err := rc.Store.Search(c.Context(), filters)
	if err != nil {
		log.Println("Error fetching results:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{"results": found})
}
