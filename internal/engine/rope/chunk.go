package rope

// nodeOf builds a balanced tree of block-sized leaves covering
// source[offset, offset+length). It always splits at a block-aligned
// midpoint so that internal boundaries fall on multiples of BlockSize,
// maximizing the chance that a future concat can fuse across them.
func nodeOf(source *leafNode, offset, length int) node {
	if length <= BlockSize {
		return source.subNode(offset, offset+length)
	}
	half := ((length + BlockSize) >> 1) & blockMask
	return newComposite(nodeOf(source, offset, half), nodeOf(source, offset+half, length-half))
}

// ensureChunked returns t unchanged unless its root is a single leaf
// longer than BlockSize, in which case it returns a new Text whose root
// is a balanced tree of block-sized leaves over the same bytes. This is
// what turns the monolithic leaf produced by FromString/FromBytes into
// a tree with shareable pieces the first time it meets a real edit.
func ensureChunked(t Text) Text {
	l, ok := t.root.(*leafNode)
	if !ok || l.length() <= BlockSize {
		return t
	}
	return newText(nodeOf(l, 0, l.length()))
}
