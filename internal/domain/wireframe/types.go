package wireframe

import (
	"encoding/json"
	"fmt"
)

// NodeType tags a layout tree node.
type NodeType string

const (
	NodeContainer NodeType = "container"
	NodeRow       NodeType = "row"
	NodeColumn    NodeType = "column"
)

// DirectionColumn is the stacking direction of the root container.
const DirectionColumn = "column"

// FullWidthSpan is the grid width of a full-width column.
const FullWidthSpan = 12

// Node is one structural element of the layout tree.
type Node struct {
	Type      NodeType `json:"type"`
	ID        string   `json:"id"`
	Direction string   `json:"direction,omitempty"`
	Span      int      `json:"span,omitempty"`
	Children  []Child  `json:"children"`
}

// Child is either a nested layout node or a reference to a component by id.
// On the wire it is the node object or the bare id string.
type Child struct {
	Node *Node
	Ref  string
}

// NewNodeChild wraps a nested node.
func NewNodeChild(n *Node) Child { return Child{Node: n} }

// NewRefChild wraps a component-id reference.
func NewRefChild(componentID string) Child { return Child{Ref: componentID} }

// MarshalJSON emits the nested node object, or the id string for refs.
func (c Child) MarshalJSON() ([]byte, error) {
	if c.Node != nil {
		return json.Marshal(c.Node)
	}
	return json.Marshal(c.Ref)
}

// UnmarshalJSON accepts either form.
func (c *Child) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty layout child")
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &c.Ref)
	}
	c.Node = &Node{}
	return json.Unmarshal(data, c.Node)
}

// ComponentType tags a component variant.
type ComponentType string

const (
	ComponentNavbar ComponentType = "Navbar"
	ComponentForm   ComponentType = "Form"
	ComponentButton ComponentType = "Button"
	ComponentTable  ComponentType = "Table"
	ComponentList   ComponentType = "List"
)

// Component is a leaf UI element referenced from the layout tree. Props
// shapes differ per type, so they stay a plain mapping rather than a
// struct hierarchy.
type Component struct {
	ID    string                 `json:"id"`
	Type  ComponentType          `json:"type"`
	Props map[string]interface{} `json:"props"`
}

// Spec is a complete wireframe specification. It is created fresh per
// synthesis call and never persisted.
type Spec struct {
	ID         string            `json:"id"`
	Layout     *Node             `json:"layout"`
	Components []Component       `json:"components"`
	Metadata   map[string]string `json:"metadata"`
}

// LeafRefs walks the layout tree and returns every component-id reference
// in document order.
func (s Spec) LeafRefs() []string {
	var refs []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		for _, child := range n.Children {
			if child.Node != nil {
				walk(child.Node)
				continue
			}
			refs = append(refs, child.Ref)
		}
	}
	walk(s.Layout)
	return refs
}

// Validate checks the tree invariant: every leaf reference resolves to
// exactly one component and every component is referenced exactly once.
func (s Spec) Validate() error {
	refCounts := make(map[string]int)
	for _, ref := range s.LeafRefs() {
		refCounts[ref]++
	}

	seen := make(map[string]bool, len(s.Components))
	for _, comp := range s.Components {
		if seen[comp.ID] {
			return fmt.Errorf("duplicate component id %q", comp.ID)
		}
		seen[comp.ID] = true

		switch refCounts[comp.ID] {
		case 1:
		case 0:
			return fmt.Errorf("component %q is not referenced by the layout", comp.ID)
		default:
			return fmt.Errorf("component %q is referenced %d times", comp.ID, refCounts[comp.ID])
		}
	}

	for ref := range refCounts {
		if !seen[ref] {
			return fmt.Errorf("layout references unknown component %q", ref)
		}
	}

	return nil
}
