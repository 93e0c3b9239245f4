// Package sqlutil provides the small text helpers used by the layout engine.
//
// The helpers fall into two groups. The first works on a single string: case
// folding of tokens, first-word extraction, flattening to a whitespace-free
// lower-case form for comparisons, indent and width measurement, and rebuilding
// a block of recovered text at a new indent.
//
// The second is Cursor, a monotonic position over the original statement. The
// layout engine uses it to ask where a comment sat in the source and to recover
// the verbatim text behind an over-long formatted line:
//
//	cur := sqlutil.NewCursor(source)
//	if m, ok := cur.Locate(sqlutil.Flatten(line)); ok {
//		fmt.Println(m.Text, m.Indent)
//	}
package sqlutil
