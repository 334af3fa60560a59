// Package record defines the data carried through the formatter: a Record
// pairs an integer value with an opaque byte payload, and a batch is an
// ordered slice of records.
//
// The payload has no meaning to the producer. The consumer decides how to
// read it; this package provides the ASCII reading used by the formatter.
package record

import "strconv"

// ExpectedLen is the number of records a batch is expected to hold.
const ExpectedLen = 2

// Record is one entry of a batch.
type Record struct {
	Value  int64
	Opaque []byte
}

// Sample returns the built-in batch printed when no other source is chosen.
func Sample() []Record {
	return []Record{
		{Value: 123, Opaque: []byte("hello")},
		{Value: 456, Opaque: []byte("world")},
	}
}

// Generate builds a batch of n records where record i has value i and the
// payload "opaque <i>". A negative n yields an empty batch.
func Generate(n int) []Record {
	if n < 0 {
		n = 0
	}
	out := make([]Record, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		out = append(out, Record{
			Value:  int64(i),
			Opaque: []byte("opaque " + strconv.Itoa(i)),
		})
	}
	return out
}
