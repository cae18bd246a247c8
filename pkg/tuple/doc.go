// Package tuple provides small fixed-arity product types T1 through T10.
//
// Go has multiple return values but no first-class tuple values, so these
// types fill the gap wherever a pair (or wider grouping) of heterogeneous
// values must travel as one: map entries, zip results, table-driven test
// cases, channel payloads.
//
//	p := tuple.Of2("answer", 42)
//	fmt.Println(p.V1, p.V2) // answer 42
//	fmt.Println(p)          // (answer, 42)
//
// Fields are exported positional values (V1..Vn), so tuples of comparable
// element types are themselves comparable and usable as map keys. Values()
// flattens any tuple into a []any for positional iteration.
package tuple
