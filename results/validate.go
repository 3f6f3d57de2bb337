package results

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRows partitions decoded rows into importable UploadRows and rejected
// rows with their messages. Every check runs for every row, so a single row can
// produce several messages. Row numbers in messages are 1-based positions in
// the decoded sequence, counted before any row is dropped. A row is either
// fully valid or fully rejected, never half-kept.
func ValidateRows(rows []RawRow) ([]UploadRow, []RowError) {
	valid := make([]UploadRow, 0, len(rows))
	var rejected []RowError

	for i, row := range rows {
		upload, messages := validateRow(row, i+1)
		if len(messages) > 0 {
			rejected = append(rejected, RowError{Row: i + 1, Messages: messages})
			continue
		}
		valid = append(valid, upload)
	}

	return valid, rejected
}

func validateRow(row RawRow, num int) (UploadRow, []string) {
	var messages []string

	participantID := strings.TrimSpace(row["participantid"])
	name := strings.TrimSpace(row["name"])
	event := strings.TrimSpace(row["event"])
	score := strings.TrimSpace(row["score"])
	rawRank := strings.TrimSpace(row["rank"])

	if participantID == "" {
		messages = append(messages, fmt.Sprintf("Row %d: Participant ID is required", num))
	}
	if name == "" {
		messages = append(messages, fmt.Sprintf("Row %d: Name is required", num))
	}
	if event == "" {
		messages = append(messages, fmt.Sprintf("Row %d: Event is required", num))
	}
	if score == "" {
		messages = append(messages, fmt.Sprintf("Row %d: Score is required", num))
	}

	// Any base-10 integer is accepted as a rank, zero and negatives included.
	rank, err := strconv.Atoi(rawRank)
	if rawRank == "" || err != nil {
		messages = append(messages, fmt.Sprintf("Row %d: Valid rank number is required", num))
	}

	if len(messages) > 0 {
		return UploadRow{}, messages
	}

	return UploadRow{
		ParticipantID: participantID,
		Name:          name,
		Event:         event,
		Score:         score,
		Rank:          rank,
	}, nil
}
