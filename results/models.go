package results

import "time"

// Result is a published competition result as stored in Postgres. Identity and
// timestamps are owned by the database.
type Result struct {
	ID              int64     `json:"id"`
	ParticipantID   string    `json:"participantId"`
	ParticipantName string    `json:"participantName"`
	Event           string    `json:"event"`
	Category        string    `json:"category"`
	Time            *string   `json:"time,omitempty"`
	Rank            *int      `json:"rank,omitempty"`
	Points          *int      `json:"points,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewResult carries the writable fields for create/update calls.
type NewResult struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"name"`
	Event           string `json:"event"`
	Category        string `json:"category"`
	Time            string `json:"time"`
	Rank            *int   `json:"rank"`
	Points          *int   `json:"points"`
	Status          string `json:"status"`
}

// UploadRow is one validated line from a bulk upload file. Rows that fail
// validation never become UploadRows; see ValidateRows.
type UploadRow struct {
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Event         string `json:"event"`
	Score         string `json:"score"`
	Rank          int    `json:"rank"`
}

// RawRow is an untyped header-keyed row as decoded from a CSV or spreadsheet
// file, before any validation has run. Keys are lowercased header names.
type RawRow map[string]string

// RowError collects the validation messages for one rejected row. Row is the
// 1-based position in the decoded sequence and is never renumbered.
type RowError struct {
	Row      int      `json:"row"`
	Messages []string `json:"messages"`
}

// FlattenErrors returns every message from the given row errors in row order.
func FlattenErrors(errs []RowError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Messages...)
	}
	return out
}
