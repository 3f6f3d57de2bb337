package controllers

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"kaloltsavam-backend/results"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// AdminResultsController owns result entry: manual add/edit/delete and the
// two-step bulk upload (preview, then commit).
type AdminResultsController struct {
	Store results.Store
}

func NewAdminResultsController(store results.Store) *AdminResultsController {
	return &AdminResultsController{Store: store}
}

func validateNewResult(r *results.NewResult) string {
	r.ParticipantID = strings.TrimSpace(r.ParticipantID)
	r.ParticipantName = strings.TrimSpace(r.ParticipantName)
	r.Event = strings.TrimSpace(r.Event)
	r.Category = strings.TrimSpace(r.Category)
	r.Time = strings.TrimSpace(r.Time)

	if r.ParticipantID == "" || r.ParticipantName == "" || r.Event == "" || r.Category == "" {
		return "participantId, name, event, and category are required"
	}
	return ""
}

func (ac *AdminResultsController) CreateResult(c *fiber.Ctx) error {
	var req results.NewResult
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if msg := validateNewResult(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := ac.Store.Create(c.Context(), req)
	if err != nil {
		// Unique constraint: (participant_id, event, category)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Result already exists for this participant/event/category"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create result"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (ac *AdminResultsController) UpdateResult(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result id"})
	}

	var req results.NewResult
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if msg := validateNewResult(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if err := ac.Store.Update(c.Context(), id, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Result already exists for this participant/event/category"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update result"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (ac *AdminResultsController) DeleteResult(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result id"})
	}

	if err := ac.Store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete result"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// BulkPreview decodes and validates an uploaded file without writing anything.
// Valid rows come back in input order; messages keep their original 1-based
// row numbers.
func (ac *AdminResultsController) BulkPreview(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A file upload is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	rows, err := results.DecodeUpload(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, results.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file format. Please upload a CSV or Excel file."})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	valid, rejected := results.ValidateRows(rows)
	messages := results.FlattenErrors(rejected)

	if len(valid) == 0 && len(messages) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "All rows failed validation",
			"errors": messages,
		})
	}

	return c.JSON(fiber.Map{
		"validRows":  valid,
		"errors":     messages,
		"validCount": len(valid),
		"errorCount": len(messages),
	})
}

type bulkCommitRequest struct {
	Rows []results.UploadRow `json:"rows"`
}

type bulkRowResult struct {
	Row   int    `json:"row"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkCommit writes the confirmed rows one insert at a time, in array order.
// There is no batch transaction: a failed row does not roll back the rows
// already written. The per-row outcome is reported back instead.
func (ac *AdminResultsController) BulkCommit(c *fiber.Ctx) error {
	var req bulkCommitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rowResults := make([]bulkRowResult, 0, len(req.Rows))
	imported := 0

	for i, row := range req.Rows {
		num := i + 1

		row.ParticipantID = strings.TrimSpace(row.ParticipantID)
		row.Name = strings.TrimSpace(row.Name)
		row.Event = strings.TrimSpace(row.Event)
		row.Score = strings.TrimSpace(row.Score)
		if row.ParticipantID == "" || row.Name == "" || row.Event == "" || row.Score == "" {
			rowResults = append(rowResults, bulkRowResult{Row: num, OK: false, Error: "Missing required fields"})
			continue
		}

		// The upload schema has no category column; bulk-imported rows are
		// stored with an empty category until an admin edits them.
		rank := row.Rank
		_, err := ac.Store.Create(c.Context(), results.NewResult{
			ParticipantID:   row.ParticipantID,
			ParticipantName: row.Name,
			Event:           row.Event,
			Time:            row.Score,
			Rank:            &rank,
		})
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				rowResults = append(rowResults, bulkRowResult{Row: num, OK: false, Error: "Duplicate result for this participant/event/category"})
			} else {
				rowResults = append(rowResults, bulkRowResult{Row: num, OK: false, Error: "Failed to save result"})
			}
			continue
		}

		imported++
		rowResults = append(rowResults, bulkRowResult{Row: num, OK: true})
	}

	return c.JSON(fiber.Map{
		"imported": imported,
		"failed":   len(rowResults) - imported,
		"results":  rowResults,
	})
}
