package store

import "context"

type sessionKey struct{}

// WithSession returns a context carrying the session id recorded on events.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFrom extracts the session id from the context, or "".
func SessionFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok {
		return v
	}
	return ""
}
