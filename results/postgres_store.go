package results

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const resultColumns = `id, participant_id, participant_name, event, category, time, rank, points, status, created_at, updated_at`

// buildSearchQuery assembles the filtered, sorted SELECT. Sort order is event
// ascending, then rank ascending with unranked rows last within their event.
func buildSearchQuery(f Filters) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT " + resultColumns + " FROM results")

	var conditions []string
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, "(participant_id ILIKE "+p+" OR participant_name ILIKE "+p+")")
	}
	if f.Event != "" {
		args = append(args, f.Event)
		conditions = append(conditions, fmt.Sprintf("event = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY event ASC, rank ASC NULLS LAST")

	return sb.String(), args
}

func (s *PostgresStore) Search(ctx context.Context, f Filters) ([]Result, error) {
	query, args := buildSearchQuery(f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := make([]Result, 0)
	for rows.Next() {
		var r Result
		var resultTime sql.NullString
		var rank, points sql.NullInt32

		if err := rows.Scan(&r.ID, &r.ParticipantID, &r.ParticipantName, &r.Event, &r.Category,
			&resultTime, &rank, &points, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}

		if resultTime.Valid {
			r.Time = &resultTime.String
		}
		if rank.Valid {
			v := int(rank.Int32)
			r.Rank = &v
		}
		if points.Valid {
			v := int(points.Int32)
			r.Points = &v
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}

	return out, nil
}

func (s *PostgresStore) Create(ctx context.Context, r NewResult) (int64, error) {
	status := r.Status
	if status == "" {
		status = "published"
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO results (participant_id, participant_name, event, category, time, rank, points, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.ParticipantID, r.ParticipantName, r.Event, r.Category, nullString(r.Time), r.Rank, r.Points, status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) Update(ctx context.Context, id int64, r NewResult) error {
	status := r.Status
	if status == "" {
		status = "published"
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE results
		SET participant_id = $1,
		    participant_name = $2,
		    event = $3,
		    category = $4,
		    time = $5,
		    rank = $6,
		    points = $7,
		    status = $8,
		    updated_at = NOW()
		WHERE id = $9
	`, r.ParticipantID, r.ParticipantName, r.Event, r.Category, nullString(r.Time), r.Rank, r.Points, status, id)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: strings.TrimSpace(s) != ""}
}

var _ Store = (*PostgresStore)(nil)
