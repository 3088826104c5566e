package tracing

import "github.com/sarchlab/numseq/seq"

// This file verifies that the tracer backends implement the Tracer
// interface and that the collector is a seq hook. If this compiles, the
// interfaces are correctly implemented.

var _ Tracer = (*DBTracer)(nil)
var _ Tracer = (*CSVTracerBackend)(nil)
var _ seq.Hook = (*opCollector)(nil)
