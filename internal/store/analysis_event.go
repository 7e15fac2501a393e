package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnalysisRequest(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(AnalysisEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "analyzer", "photo_name",
			"photo_bytes", "latency_ms", "success", "error_message").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Analyzer, data.PhotoName,
			data.PhotoBytes, data.LatencyMs, data.Success, data.ErrorMessage).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "session_id", "analyzer", "photo_name",
			"photo_bytes", "latency_ms", "success", "error_message").
		From(entsql.Table(AnalysisEventsTable.Name))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}
	defer rows.Close()

	var events []AnalysisEvent
	for rows.Next() {
		var e AnalysisEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.Analyzer,
			&e.PhotoName, &e.PhotoBytes, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan analysis event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}
	return events, nil
}

// applyQueryOpts adds the shared filters and newest-first ordering.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
