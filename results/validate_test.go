package results

import (
	"strings"
	"testing"
)

func TestValidateRowsHappyPath(t *testing.T) {
	rows := []RawRow{
		{"participantid": " P1234 ", "name": " John Smith ", "event": "100m Sprint", "score": "10.5s", "rank": "1"},
		{"participantid": "P1235", "name": "Sarah Johnson", "event": "Long Jump", "score": "6.2m", "rank": "2"},
	}

	valid, rejected := ValidateRows(rows)
	if len(rejected) != 0 {
		t.Fatalf("expected no rejected rows, got %+v", rejected)
	}
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(valid))
	}
	if valid[0].ParticipantID != "P1234" || valid[0].Name != "John Smith" {
		t.Fatalf("expected fields to be trimmed, got %+v", valid[0])
	}
	if valid[0].Rank != 1 || valid[1].Rank != 2 {
		t.Fatalf("unexpected ranks: %d, %d", valid[0].Rank, valid[1].Rank)
	}
}

func TestValidateRowsMissingName(t *testing.T) {
	rows := []RawRow{
		{"participantid": "P1", "name": "Alice", "event": "100m", "score": "10.1s", "rank": "1"},
		{"participantid": "P2", "name": "", "event": "200m", "score": "22.0s", "rank": "2"},
	}

	valid, rejected := ValidateRows(rows)
	if len(valid) != 1 || valid[0].ParticipantID != "P1" {
		t.Fatalf("expected exactly P1 in the valid set, got %+v", valid)
	}
	if len(rejected) != 1 || rejected[0].Row != 2 {
		t.Fatalf("expected one rejected row at position 2, got %+v", rejected)
	}
	if len(rejected[0].Messages) != 1 || rejected[0].Messages[0] != "Row 2: Name is required" {
		t.Fatalf("unexpected messages: %+v", rejected[0].Messages)
	}
}

func TestValidateRowsCollectsAllFieldErrors(t *testing.T) {
	rows := []RawRow{
		{"participantid": "", "name": "  ", "event": "", "score": "", "rank": "first"},
	}

	valid, rejected := ValidateRows(rows)
	if len(valid) != 0 {
		t.Fatalf("expected no valid rows, got %+v", valid)
	}
	if len(rejected) != 1 {
		t.Fatalf("expected one rejected row, got %d", len(rejected))
	}
	if len(rejected[0].Messages) != 5 {
		t.Fatalf("expected one message per failed check, got %+v", rejected[0].Messages)
	}
	for _, msg := range rejected[0].Messages {
		if !strings.HasPrefix(msg, "Row 1: ") {
			t.Fatalf("message missing row tag: %q", msg)
		}
	}
}

func TestValidateRowsIndexNotRenumbered(t *testing.T) {
	rows := []RawRow{
		{"participantid": "", "name": "", "event": "", "score": "", "rank": ""},
		{"participantid": "P2", "name": "Bob", "event": "Quiz", "score": "80", "rank": "oops"},
		{"participantid": "P3", "name": "Carol", "event": "Quiz", "score": "75", "rank": "3"},
	}

	valid, rejected := ValidateRows(rows)
	if len(valid) != 1 || valid[0].ParticipantID != "P3" {
		t.Fatalf("expected only P3 valid, got %+v", valid)
	}
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejected rows, got %+v", rejected)
	}
	if rejected[0].Row != 1 || rejected[1].Row != 2 {
		t.Fatalf("row indices must track the decoded positions, got %d and %d", rejected[0].Row, rejected[1].Row)
	}
	if rejected[1].Messages[0] != "Row 2: Valid rank number is required" {
		t.Fatalf("unexpected message: %q", rejected[1].Messages[0])
	}
}

func TestValidateRowsZeroAndNegativeRanksAccepted(t *testing.T) {
	rows := []RawRow{
		{"participantid": "P1", "name": "Alice", "event": "Quiz", "score": "50", "rank": "0"},
		{"participantid": "P2", "name": "Bob", "event": "Quiz", "score": "40", "rank": "-3"},
	}

	valid, rejected := ValidateRows(rows)
	if len(rejected) != 0 {
		t.Fatalf("rank sign is not validated, got rejections: %+v", rejected)
	}
	if valid[0].Rank != 0 || valid[1].Rank != -3 {
		t.Fatalf("unexpected ranks: %+v", valid)
	}
}

func TestValidateRowsEmptyInput(t *testing.T) {
	valid, rejected := ValidateRows(nil)
	if len(valid) != 0 || len(rejected) != 0 {
		t.Fatalf("expected empty partition for empty input, got %+v / %+v", valid, rejected)
	}
}

func TestFlattenErrors(t *testing.T) {
	errs := []RowError{
		{Row: 1, Messages: []string{"Row 1: Name is required", "Row 1: Score is required"}},
		{Row: 3, Messages: []string{"Row 3: Valid rank number is required"}},
	}

	flat := FlattenErrors(errs)
	if len(flat) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(flat))
	}
	if flat[2] != "Row 3: Valid rank number is required" {
		t.Fatalf("unexpected message order: %+v", flat)
	}
}

func TestDecodeThenValidateRoundTrip(t *testing.T) {
	csvData := "participantId,name,event,score,rank\n" +
		"P1,Alice,100m,10.1s,1\n" +
		"P2,,200m,22.0s,2\n"

	raw, err := DecodeUpload(strings.NewReader(csvData), "upload.csv")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	valid, rejected := ValidateRows(raw)
	if len(valid) != 1 || valid[0].ParticipantID != "P1" {
		t.Fatalf("expected exactly one valid record (P1), got %+v", valid)
	}
	if len(rejected) != 1 || rejected[0].Messages[0] != "Row 2: Name is required" {
		t.Fatalf("expected a single message for row 2, got %+v", rejected)
	}
}
