package tracing

// An OpRecord describes one mutating operation performed on a sequence.
type OpRecord struct {
	// ID uniquely identifies the operation.
	ID string

	// Sequence is the name of the sequence the operation mutated.
	Sequence string

	// Op is the short name of the operation, such as "push" or "sort".
	Op string

	// Value is the scalar argument of the operation, when it has one.
	Value float64

	// Detail renders non-scalar arguments, such as a cut range or the
	// values of a merge.
	Detail string

	// Length is the populated length after the operation.
	Length int

	// Duration is the elapsed wall-clock time of the operation in seconds.
	// Only sorts report a duration.
	Duration float64
}

// A Tracer can collect operation records.
type Tracer interface {
	Record(rec OpRecord)
}
