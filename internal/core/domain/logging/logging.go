package logging

import "context"

type contextRequestID string

const CONTEXT_REQUEST_ID_KEY = contextRequestID("requestID")

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CONTEXT_REQUEST_ID_KEY, requestID)
}

func RequestIDFromContext(ctx context.Context) (requestID string, ok bool) {
	if ctx == nil {
		return "", false
	}
	requestID, ok = ctx.Value(CONTEXT_REQUEST_ID_KEY).(string)
	return requestID, ok && requestID != ""
}
