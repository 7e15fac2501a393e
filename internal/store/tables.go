package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table layouts for the session event log. Every event table starts with
// the same id, sequence and timestamp columns.

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "analyzer", Type: field.TypeString},
		{Name: "photo_name", Type: field.TypeString},
		{Name: "photo_bytes", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "analysisevent_timestamp", Columns: []*schema.Column{AnalysisEventsColumns[2]}},
			{Name: "analysisevent_session_id", Columns: []*schema.Column{AnalysisEventsColumns[3]}},
		},
	}

	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "activityevent_timestamp", Columns: []*schema.Column{ActivityEventsColumns[2]}},
			{Name: "activityevent_session_id", Columns: []*schema.Column{ActivityEventsColumns[3]}},
			{Name: "activityevent_kind", Columns: []*schema.Column{ActivityEventsColumns[4]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		ActivityEventsTable,
	}
)
