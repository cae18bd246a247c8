// Package stream provides small, lazy helpers over the standard iter.Seq and
// iter.Seq2 iterator types.
//
// Every transformation (Filter, Map, Take, Distinct, Compact) returns a new
// sequence without consuming the input; work happens only when the resulting
// sequence is ranged over, and stops as soon as the consumer breaks out:
//
//	evens := stream.Filter(stream.FromSlice([]int{1, 2, 3, 4}), func(v int) bool {
//	    return v%2 == 0
//	})
//	for v := range evens {
//	    fmt.Println(v) // 2, 4
//	}
//
// Zip2 and Pairs bridge sequences into the tuple package, pairing elements
// into tuple.T2 values. The helpers hold no state of their own; the usual
// single-use semantics of the underlying sequences apply.
package stream
