// Package seq provides a fixed-capacity, mutable numeric sequence. A
// Sequence owns a pre-allocated storage region and never grows beyond the
// capacity declared at construction time. Out-of-range and malformed-range
// operations fail with sentinel errors and leave the sequence unchanged.
package seq
