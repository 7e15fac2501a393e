package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	if data.Kind == "" {
		return fmt.Errorf("save activity event: empty kind")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(ActivityEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "kind", "detail").
		Values(seqNum, time.Now().UTC(), data.SessionID, string(data.Kind), data.Detail).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryActivity(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "session_id", "kind", "detail").
		From(entsql.Table(ActivityEventsTable.Name))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var (
			e    ActivityEvent
			kind string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &kind, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		e.Kind = ActivityKind(kind)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	return events, nil
}
