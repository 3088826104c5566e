package seq

import "log"

// LogHookBase provides the common logic for hooks that write to a logger.
type LogHookBase struct {
	*log.Logger
}

// OpLogger is a hook that writes one line per sequence operation to a
// logger.
type OpLogger struct {
	LogHookBase
}

// NewOpLogger returns an OpLogger that writes to the given logger.
func NewOpLogger(logger *log.Logger) *OpLogger {
	h := new(OpLogger)
	h.Logger = logger
	return h
}

// Func writes the operation information into the logger.
func (h *OpLogger) Func(ctx HookCtx) {
	domain, ok := ctx.Domain.(Named)
	if !ok {
		return
	}

	if ctx.Item == nil {
		h.Printf("%s, %s", domain.Name(), ctx.Pos.Name)
		return
	}

	h.Printf("%s, %s, %v", domain.Name(), ctx.Pos.Name, ctx.Item)
}
