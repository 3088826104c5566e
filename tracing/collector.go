package tracing

import (
	"fmt"
	"time"

	"github.com/sarchlab/numseq/seq"
)

// CollectOps attaches a hook to the sequence that reports every mutating
// operation to the tracer. Record IDs come from the package-level ID
// generator of the seq package.
func CollectOps(s *seq.Sequence, tracer Tracer) {
	s.AcceptHook(&opCollector{tracer: tracer})
}

type opCollector struct {
	tracer Tracer
}

var opNames = map[*seq.HookPos]string{
	seq.HookPosPush:    "push",
	seq.HookPosPop:     "pop",
	seq.HookPosPopHead: "pop_head",
	seq.HookPosCut:     "cut",
	seq.HookPosMerge:   "merge",
	seq.HookPosReverse: "reverse",
	seq.HookPosClear:   "clear",
	seq.HookPosFill:    "fill",
	seq.HookPosSortEnd: "sort",
}

// Func translates a hook invocation into an operation record. The sort
// start position is skipped; the end position carries the duration.
func (c *opCollector) Func(ctx seq.HookCtx) {
	domain, ok := ctx.Domain.(*seq.Sequence)
	if !ok {
		return
	}

	op, ok := opNames[ctx.Pos]
	if !ok {
		return
	}

	rec := OpRecord{
		ID:       seq.GetIDGenerator().Generate(),
		Sequence: domain.Name(),
		Op:       op,
		Length:   domain.Length(),
	}

	switch item := ctx.Item.(type) {
	case float64:
		rec.Value = item
	case time.Duration:
		rec.Duration = item.Seconds()
	case nil:
	default:
		rec.Detail = fmt.Sprintf("%v", item)
	}

	c.tracer.Record(rec)
}
