// Package rope implements an immutable, persistent text rope.
//
// A Text value is a balanced binary tree over fixed-width code units (a
// single byte, here) supporting O(log n) concatenation, insertion,
// deletion, and substring extraction, and O(1) snapshotting: any Text
// value may be shared freely across goroutines without copying, because
// every operation returns a fresh value and no node is ever mutated
// after construction.
//
// The tree is one of two node kinds: a leaf holding a contiguous run of
// bytes, or a composite holding a head and a tail whose lengths sum to
// the composite's cached length. Concat is the load-bearing operation:
// it fuses small operands into a single leaf, and otherwise composes
// them with at most one tree rotation, merging a much smaller operand
// into the nearer half of the larger one so that the result moves toward
// the classic weak balance ratio, min(head, tail)*2 > max(head, tail).
// That ratio is not enforced on every node, and no full rebalance is
// ever performed.
//
//	t := rope.FromString("hello")
//	t, _ = t.Insert(5, rope.FromString(" world"))
//	s := t.String() // "hello world"
//
// Every Text is a valid snapshot: readers on other goroutines observe a
// consistent past regardless of what edits happen afterward, because no
// operation here mutates shared state other than a best-effort, benign
// locator cache (see hint.go).
package rope
