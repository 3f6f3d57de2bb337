package controllers

import (
	"database/sql"
	"log"
	"strconv"
	"strings"

	"kaloltsavam-backend/database"
	"kaloltsavam-backend/mail"
	"kaloltsavam-backend/models"

	"github.com/gofiber/fiber/v2"
)

type appealRequest struct {
	ParticipantID string `json:"participantId"`
	EventID       string `json:"eventId"`
	Category      string `json:"category"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Reason        string `json:"reason"`
}

// SubmitAppeal records a public appeal and sends a confirmation email.
func SubmitAppeal(c *fiber.Ctx) error {
	var req appealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	req.ParticipantID = strings.TrimSpace(req.ParticipantID)
	req.EventID = strings.TrimSpace(req.EventID)
	req.Category = strings.TrimSpace(req.Category)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Reason = strings.TrimSpace(req.Reason)

	if req.ParticipantID == "" || req.EventID == "" || req.Category == "" ||
		req.Name == "" || req.Email == "" || req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "participantId, eventId, category, name, email, and reason are required",
		})
	}
	if !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A valid email address is required"})
	}

	var id int64
	err := database.DB.QueryRow(`
		INSERT INTO appeals (participant_id, event_id, category, name, email, phone, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.ParticipantID, req.EventID, req.Category, req.Name, req.Email, req.Phone, req.Reason).Scan(&id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit appeal"})
	}

	if err := mail.SendAppealReceived(req.Name, req.Email, id); err != nil {
		log.Println("Failed to send appeal confirmation email:", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Your appeal has been recorded. You will receive updates via email.",
	})
}

// ListAppeals returns the admin queue, newest first, optionally filtered by
// status.
func ListAppeals(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !models.ValidAppealStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown appeal status"})
	}

	query := `
		SELECT id, participant_id, event_id, category, name, email, phone, reason, status, submitted_at
		FROM appeals
	`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC, id DESC`

	rows, err := database.DB.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list appeals"})
	}
	defer rows.Close()

	appeals := make([]models.Appeal, 0)
	for rows.Next() {
		var a models.Appeal
		var phone sql.NullString
		if err := rows.Scan(&a.ID, &a.ParticipantID, &a.EventID, &a.Category, &a.Name,
			&a.Email, &phone, &a.Reason, &a.Status, &a.SubmittedAt); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse appeals"})
		}
		a.Phone = phone.String
		appeals = append(appeals, a)
	}

	return c.JSON(appeals)
}

// UpdateAppealStatus moves an appeal through the review workflow and notifies
// the submitter.
func UpdateAppealStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appeal id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if !models.ValidAppealStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown appeal status"})
	}

	var name, email string
	err = database.DB.QueryRow(`
		UPDATE appeals SET status = $1 WHERE id = $2
		RETURNING name, email
	`, req.Status, id).Scan(&name, &email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appeal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appeal"})
	}

	if err := mail.SendAppealStatusUpdate(name, email, req.Status); err != nil {
		log.Println("Failed to send appeal status email:", err)
	}

	return c.JSON(fiber.Map{"ok": true, "status": req.Status})
}
