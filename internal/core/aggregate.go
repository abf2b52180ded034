package core

// AggregateSizes sets every directory's size to the sum of its children,
// visiting children before their parent, and returns the root size.
// Running it again recomputes the same sums.
func (fs *Filesystem) AggregateSizes() int64 {
	size := fs.aggregate(RootID)
	fs.sized = true
	return size
}

func (fs *Filesystem) aggregate(id NodeID) int64 {
	n := &fs.nodes[id]
	if !n.IsDir() {
		return n.Size
	}

	var total int64
	for _, child := range n.Children {
		total += fs.aggregate(child)
	}
	n.Size = total
	return total
}
