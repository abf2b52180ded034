package core

// Queries below read directory sizes and assume AggregateSizes has run.

// SumDirectoriesSmallerThan sums the size of every directory, the root
// included, whose size is strictly below threshold.
func (fs *Filesystem) SumDirectoriesSmallerThan(threshold int64) int64 {
	return fs.sumSmallerThan(RootID, threshold)
}

func (fs *Filesystem) sumSmallerThan(dir NodeID, threshold int64) int64 {
	var sum int64
	for _, child := range fs.nodes[dir].Children {
		if fs.nodes[child].IsDir() {
			sum += fs.sumSmallerThan(child, threshold)
		}
	}

	if size := fs.nodes[dir].Size; size < threshold {
		sum += size
	}
	return sum
}

// FindSmallestDirectoryAtLeast returns the smallest directory whose size is
// at least minSize. When several directories tie, the first one found wins.
func (fs *Filesystem) FindSmallestDirectoryAtLeast(minSize int64) (NodeID, bool) {
	return fs.smallestAtLeast(RootID, minSize)
}

func (fs *Filesystem) smallestAtLeast(dir NodeID, minSize int64) (NodeID, bool) {
	best, found := NoParent, false

	for _, child := range fs.nodes[dir].Children {
		if !fs.nodes[child].IsDir() {
			continue
		}
		candidate, ok := fs.smallestAtLeast(child, minSize)
		if !ok {
			continue
		}
		if !found || fs.nodes[candidate].Size < fs.nodes[best].Size {
			best, found = candidate, true
		}
	}

	size := fs.nodes[dir].Size
	if size >= minSize && (!found || size < fs.nodes[best].Size) {
		best, found = dir, true
	}
	return best, found
}
