package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	SessionID string // only events from this session ("" = all)
}

// AnalysisEventData captures one face-analysis request.
type AnalysisEventData struct {
	SessionID    string
	Analyzer     string
	PhotoName    string
	PhotoBytes   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AnalysisEvent is a persisted AnalysisEventData.
type AnalysisEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// ActivityKind labels a user action recorded in the session log.
type ActivityKind string

const (
	ActivitySessionStarted   ActivityKind = "session-started"
	ActivityQuizCompleted    ActivityKind = "quiz-completed"
	ActivityStepToggled      ActivityKind = "step-toggled"
	ActivitySnapshotAppended ActivityKind = "snapshot-appended"
)

// ActivityEventData captures one user action. Detail is free-form text,
// usually JSON.
type ActivityEventData struct {
	SessionID string
	Kind      ActivityKind
	Detail    string
}

// ActivityEvent is a persisted ActivityEventData.
type ActivityEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ActivityEventData
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendAnalysisRequest records a face-analysis call.
	AppendAnalysisRequest(ctx context.Context, data AnalysisEventData) error

	// AppendActivity records a user action.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// QueryAnalysisEvents returns analysis events, newest first.
	QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEvent, error)

	// QueryActivity returns activity events, newest first.
	QueryActivity(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error)
}
