package core

import (
	"fmt"
	"io"
	"strings"
)

type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// NodeID addresses a node inside its Filesystem.
type NodeID int

const (
	RootID   NodeID = 0
	NoParent NodeID = -1
)

// Node is a file or directory discovered while replaying a transcript.
// Directory sizes stay zero until Filesystem.AggregateSizes runs.
type Node struct {
	Name     string
	Kind     Kind
	Size     int64
	Parent   NodeID
	Children []NodeID

	listed bool
}

func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Filesystem owns every node of a tree. Nodes refer to each other by index,
// so the parent links never form ownership cycles.
type Filesystem struct {
	nodes []Node
	sized bool
}

func newFilesystem() *Filesystem {
	return &Filesystem{
		nodes: []Node{{Name: "/", Kind: KindDir, Parent: NoParent}},
	}
}

func (fs *Filesystem) Root() NodeID {
	return RootID
}

// Node returns the node for id. Callers must not modify it.
func (fs *Filesystem) Node(id NodeID) *Node {
	return &fs.nodes[id]
}

func (fs *Filesystem) Len() int {
	return len(fs.nodes)
}

// Sized reports whether directory sizes have been aggregated.
func (fs *Filesystem) Sized() bool {
	return fs.sized
}

func (fs *Filesystem) addChild(parent NodeID, name string, kind Kind, size int64) NodeID {
	id := NodeID(len(fs.nodes))
	fs.nodes = append(fs.nodes, Node{
		Name:   name,
		Kind:   kind,
		Size:   size,
		Parent: parent,
	})
	fs.nodes[parent].Children = append(fs.nodes[parent].Children, id)
	return id
}

func (fs *Filesystem) childByName(parent NodeID, name string) (NodeID, bool) {
	for _, child := range fs.nodes[parent].Children {
		if fs.nodes[child].Name == name {
			return child, true
		}
	}
	return NoParent, false
}

// Path returns the absolute slash-separated path of id.
func (fs *Filesystem) Path(id NodeID) string {
	if id == RootID {
		return "/"
	}

	var parts []string
	for cur := id; cur != RootID; cur = fs.nodes[cur].Parent {
		parts = append(parts, fs.nodes[cur].Name)
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// Walk visits every node in pre-order, children in listing order.
func (fs *Filesystem) Walk(fn func(id NodeID, depth int)) {
	fs.walk(RootID, 0, fn)
}

func (fs *Filesystem) walk(id NodeID, depth int, fn func(id NodeID, depth int)) {
	fn(id, depth)
	for _, child := range fs.nodes[id].Children {
		fs.walk(child, depth+1, fn)
	}
}

// Directories returns every directory in pre-order, the root first.
func (fs *Filesystem) Directories() []NodeID {
	var dirs []NodeID
	fs.Walk(func(id NodeID, _ int) {
		if fs.nodes[id].IsDir() {
			dirs = append(dirs, id)
		}
	})
	return dirs
}

// WriteTree prints the tree one node per line, indented two spaces per level:
//
//	- / (dir, size=14878214)
//	  - a (dir, size=29116)
//	    - f (file, size=29116)
//
// Directory sizes are omitted until the tree is sized.
func (fs *Filesystem) WriteTree(w io.Writer) error {
	var err error
	fs.Walk(func(id NodeID, depth int) {
		if err != nil {
			return
		}
		n := &fs.nodes[id]
		indent := strings.Repeat("  ", depth)
		if n.IsDir() && !fs.sized {
			_, err = fmt.Fprintf(w, "%s- %s (%s)\n", indent, n.Name, n.Kind)
			return
		}
		_, err = fmt.Fprintf(w, "%s- %s (%s, size=%d)\n", indent, n.Name, n.Kind, n.Size)
	})
	if err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}
