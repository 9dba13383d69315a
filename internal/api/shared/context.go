package shared

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ContextKey namespaces values this package stores on a request context.
type ContextKey string

const (
	// TraceIDKey holds the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the trace ID size in bytes; it renders as 32 hex characters.
	TraceIDLength = 16
)

// SetTraceID returns a copy of ctx carrying a new trace ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID returns the trace ID stored by SetTraceID, or "".
func GetTraceID(ctx context.Context) string {
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// newTraceID renders a random v4 UUID as bare hex. When the random source
// fails it derives an ID from the clock so requests are still distinguishable.
func newTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Error("failed to generate random trace ID, using clock", "error", err)
		var b [TraceIDLength]byte
		ts := time.Now()
		binary.BigEndian.PutUint64(b[:8], uint64(ts.UnixNano()))
		binary.BigEndian.PutUint64(b[8:], uint64(ts.Nanosecond())<<32|uint64(ts.Unix()&0xffffffff))
		return hex.EncodeToString(b[:])
	}
	return hex.EncodeToString(id[:])
}
