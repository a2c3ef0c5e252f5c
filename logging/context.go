package logging

import (
	"context"

	"go.viam.com/utils"
)

type sessionKeyType int

const sessionKeyID = sessionKeyType(iota)

// sessionFieldKey is the field the `C*` variants tag their entries with.
const sessionFieldKey = "session"

// session names one planning run so that runs sharing appenders, such as bench seeds, can be told
// apart in the output.
type session struct {
	name  string
	debug bool
}

// WithSession returns a new context tagged with a planning session name. Entries logged with the
// `C*` variants under it carry a "session" field. Debug mode of a parent context is kept.
func WithSession(ctx context.Context, name string) context.Context {
	prev, _ := ctx.Value(sessionKeyID).(session)
	return context.WithValue(ctx, sessionKeyID, session{name: name, debug: prev.debug})
}

// EnableDebugMode returns a new context tagged with a session name that also has debug logging
// enabled. An empty `name` generates a random one.
func EnableDebugMode(ctx context.Context, name string) context.Context {
	if name == "" {
		name = utils.RandomAlphaString(6)
	}
	return context.WithValue(ctx, sessionKeyID, session{name: name, debug: true})
}

// IsDebugMode returns whether the input context has debug logging enabled.
func IsDebugMode(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	s, ok := ctx.Value(sessionKeyID).(session)
	return ok && s.debug
}

// SessionName returns the session name of the context, or "" if it has none.
func SessionName(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(sessionKeyID).(session)
	return s.name
}
