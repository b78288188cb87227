package rope

import "sync/atomic"

// cache holds the per-Text, best-effort state that every operation on a
// Text may populate but none needs to read for correctness: the last
// leaf located by index (see hint.go) and a memoized hash. Both fields
// are written at most from a race, never torn, via atomic swaps, since
// distinct goroutines may call operations on the same Text concurrently.
type cache struct {
	hint     atomic.Pointer[hint]
	hash     atomic.Uint32
	hashDone atomic.Bool
}

// Text is an immutable character sequence backed by a rope. The zero
// value is not a valid Text; use Empty, FromString, or FromBytes.
//
// Every method is a pure function of its receiver and arguments: it
// never mutates the receiver, so any Text is a valid O(1) snapshot that
// may be shared freely across goroutines, including goroutines that
// concurrently build new Text values from it.
type Text struct {
	root  node
	cache *cache
}

func newText(n node) Text {
	return Text{root: n, cache: &cache{}}
}

// empty is the canonical empty Text; every Empty() call and every
// operation that collapses to nothing shares this root by identity.
var empty = newText(emptyLeaf)

// Empty returns the empty Text.
func Empty() Text { return empty }

// FromBytes returns a Text whose content is a copy of b.
func FromBytes(b []byte) Text {
	if len(b) == 0 {
		return empty
	}
	data := make([]byte, len(b))
	copy(data, b)
	return newText(newLeaf(data))
}

// FromString returns a Text whose content equals s.
func FromString(s string) Text {
	return FromBytes([]byte(s))
}

// Length returns the number of code units (bytes) in t. O(1).
func (t Text) Length() int {
	return t.root.length()
}

// IsEmpty reports whether t has zero length.
func (t Text) IsEmpty() bool {
	return t.Length() == 0
}

// locate returns the leaf covering index and its base offset, consulting
// and refreshing the locator cache along the way.
func (t Text) locate(index int) (*leafNode, int) {
	if h := t.cache.hint.Load(); h.covers(index) {
		return h.leaf, h.base
	}
	leaf, base := findLeaf(t.root, index)
	t.cache.hint.Store(&hint{leaf: leaf, base: base})
	return leaf, base
}

// CharAt returns the code unit at offset i, or ErrOutOfRange if i does
// not satisfy 0 <= i < t.Length().
func (t Text) CharAt(i int) (byte, error) {
	n := t.Length()
	if i < 0 || i >= n {
		return 0, outOfRange("CharAt", i, n)
	}
	leaf, base := t.locate(i)
	return leaf.charAt(i - base), nil
}

// Concat returns t ++ other. If either side is empty, the other side is
// returned unchanged by identity. Otherwise both sides are chunked (see
// ensureChunked) before their roots are combined, so a monolithic
// initial buffer is broken into shareable blocks the first time it is
// edited.
func (t Text) Concat(other Text) Text {
	if other.IsEmpty() {
		return t
	}
	if t.IsEmpty() {
		return other
	}
	a := ensureChunked(t)
	b := ensureChunked(other)
	return newText(concatNodes(a.root, b.root))
}

// SubText returns the Text covering [s, e). It returns t itself by
// identity when the range spans the whole text, and the empty Text when
// s == e. ErrOutOfRange is returned when 0 <= s <= e <= t.Length() does
// not hold.
func (t Text) SubText(s, e int) (Text, error) {
	n := t.Length()
	if s < 0 || e < s || e > n {
		return Text{}, outOfRange("SubText", s, n)
	}
	if s == 0 && e == n {
		return t, nil
	}
	if s == e {
		return empty, nil
	}
	return newText(t.root.subNode(s, e)), nil
}

// Insert returns t with other spliced in before offset index:
// t[0:index] ++ other ++ t[index:t.Length()].
func (t Text) Insert(index int, other Text) (Text, error) {
	n := t.Length()
	if index < 0 || index > n {
		return Text{}, outOfRange("Insert", index, n)
	}
	left, err := t.SubText(0, index)
	if err != nil {
		return Text{}, err
	}
	right, err := t.SubText(index, n)
	if err != nil {
		return Text{}, err
	}
	return left.Concat(other).Concat(right), nil
}

// Delete returns t with [s, e) removed: t[0:s] ++ t[e:t.Length()]. It
// returns t itself by identity when s == e.
func (t Text) Delete(s, e int) (Text, error) {
	n := t.Length()
	if s < 0 || e < s || e > n {
		return Text{}, outOfRange("Delete", s, n)
	}
	if s == e {
		return t, nil
	}
	chunked := ensureChunked(t)
	left, err := chunked.SubText(0, s)
	if err != nil {
		return Text{}, err
	}
	right, err := chunked.SubText(e, n)
	if err != nil {
		return Text{}, err
	}
	return left.Concat(right), nil
}

// String materializes the full contents of t as a Go string.
func (t Text) String() string {
	n := t.Length()
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	t.root.copyTo(0, n, buf, 0)
	return string(buf)
}

// Bytes materializes the full contents of t as a freshly allocated byte
// slice; mutating the result does not affect t.
func (t Text) Bytes() []byte {
	n := t.Length()
	buf := make([]byte, n)
	t.root.copyTo(0, n, buf, 0)
	return buf
}

// SameRoot reports whether t and other were produced from the same
// underlying node by structural sharing. Two Texts may be Equal without
// SameRoot being true; the converse always holds.
func (t Text) SameRoot(other Text) bool {
	return t.root == other.root
}

// Equal reports whether t and other have the same length and equal code
// units at every index.
func (t Text) Equal(other Text) bool {
	if t.SameRoot(other) {
		return true
	}
	if t.Length() != other.Length() {
		return false
	}
	return t.String() == other.String()
}

// Hash returns 31-multiplicative hash over t's code units in order:
// h = 0; for each code unit c: h = 31*h + c (mod 2^32). It is consistent
// with Equal and is memoized on first call.
func (t Text) Hash() uint32 {
	if t.cache.hashDone.Load() {
		return t.cache.hash.Load()
	}
	var h uint32
	for _, c := range t.Bytes() {
		h = 31*h + uint32(c)
	}
	t.cache.hash.Store(h)
	t.cache.hashDone.Store(true)
	return h
}
