package core

import (
	"errors"
	"fmt"
)

var ErrInvalidDiskSpace = errors.New("invalid disk space")

// DiskSpace describes the device a transcript was recorded on and the free
// space an update needs.
type DiskSpace struct {
	Capacity int64
	Required int64
}

func (d DiskSpace) Validate() error {
	switch {
	case d.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidDiskSpace, d.Capacity)
	case d.Required < 0:
		return fmt.Errorf("%w: required space must not be negative, got %d", ErrInvalidDiskSpace, d.Required)
	case d.Required > d.Capacity:
		return fmt.Errorf("%w: required space %d exceeds capacity %d", ErrInvalidDiskSpace, d.Required, d.Capacity)
	}
	return nil
}

// Plan is the outcome of looking for a directory to delete.
type Plan struct {
	Used   int64
	Unused int64
	Needed int64

	// Sufficient is set when the unused space already covers the update.
	Sufficient bool

	Candidate NodeID
	Found     bool
}

// Plan picks the smallest directory whose deletion frees enough space.
// fs must be sized.
func (d DiskSpace) Plan(fs *Filesystem) Plan {
	used := fs.Node(fs.Root()).Size
	plan := Plan{
		Used:      used,
		Unused:    d.Capacity - used,
		Candidate: NoParent,
	}
	plan.Needed = d.Required - plan.Unused

	if plan.Needed <= 0 {
		plan.Sufficient = true
		return plan
	}

	plan.Candidate, plan.Found = fs.FindSmallestDirectoryAtLeast(plan.Needed)
	return plan
}

// Report holds both answers for a transcript.
type Report struct {
	SmallDirectoryTotal int64
	Plan                Plan
}

// Solve sizes fs if needed and answers both queries.
func Solve(fs *Filesystem, threshold int64, disk DiskSpace) Report {
	if !fs.Sized() {
		fs.AggregateSizes()
	}
	return Report{
		SmallDirectoryTotal: fs.SumDirectoriesSmallerThan(threshold),
		Plan:                disk.Plan(fs),
	}
}
