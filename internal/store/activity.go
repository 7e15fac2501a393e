package store

import (
	"context"
	"fmt"
	"os"
)

// RecordActivity appends a user action for the session carried by ctx.
// A nil repo is a no-op. Failures are reported on stderr and never
// returned, so callers on the UI path can fire and forget.
func RecordActivity(ctx context.Context, repo EventRepo, kind ActivityKind, detail string) {
	if repo == nil {
		return
	}
	data := ActivityEventData{
		SessionID: SessionFrom(ctx),
		Kind:      kind,
		Detail:    detail,
	}
	if err := repo.AppendActivity(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log %s event: %v\n", kind, err)
	}
}
