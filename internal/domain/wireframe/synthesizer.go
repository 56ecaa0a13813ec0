package wireframe

import (
	"github.com/uxforge/agent-api/internal/domain/intent"
	"github.com/uxforge/agent-api/internal/shared/id"
)

const (
	generatorName    = "rule-based"
	generatorVersion = "1.0.0"
)

// RuleCount is the number of layout rules evaluated per synthesis call.
const RuleCount = 5

// Node id prefixes. The root id doubles as the wireframe id.
const (
	wireframePrefix = "wf"
	rowPrefix       = "row"
	columnPrefix    = "col"
)

// Synthesizer expands intent lists into wireframe specs. It holds no mutable
// state beyond the injected id generator and is safe for concurrent use.
type Synthesizer struct {
	ids id.NodeGenerator
}

// NewSynthesizer creates a synthesizer with random node ids.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{ids: id.RandomNodes()}
}

// NewSynthesizerWithIDs injects a node id generator, e.g. a sequential one
// for deterministic tests.
func NewSynthesizerWithIDs(gen id.NodeGenerator) *Synthesizer {
	return &Synthesizer{ids: gen}
}

// Synthesize builds a wireframe spec from the given intents. Only intent
// types are consulted; values and confidences are ignored. Rules fire in a
// fixed order against the same deduplicated type set, each contributing at
// most one row of a single full-width column. An input recognizing nothing
// still yields a layout with one empty row.
func (s *Synthesizer) Synthesize(intents []intent.Intent) Spec {
	seen := make(map[intent.Type]bool, len(intents))
	for _, in := range intents {
		seen[in.Type] = true
	}

	root := &Node{
		Type:      NodeContainer,
		ID:        s.ids.Generate(wireframePrefix),
		Direction: DirectionColumn,
		Children:  []Child{},
	}
	components := make([]Component, 0, 4)

	// Rule 1: navigation bar
	if seen[intent.TypeNavbar] || seen[intent.TypeDashboard] {
		s.appendRow(root, "navbar-1")
		components = append(components, Component{
			ID:   "navbar-1",
			Type: ComponentNavbar,
			Props: map[string]interface{}{
				"title": "App",
				"links": []string{"Home", "About", "Contact"},
			},
		})
	}

	// Rule 2: login form with its submit button
	if seen[intent.TypeLogin] {
		s.appendRow(root, "form-1", "button-1")
		components = append(components,
			Component{
				ID:   "form-1",
				Type: ComponentForm,
				Props: map[string]interface{}{
					"fields": []map[string]string{
						{"name": "email", "type": "email"},
						{"name": "password", "type": "password"},
					},
				},
			},
			Component{
				ID:   "button-1",
				Type: ComponentButton,
				Props: map[string]interface{}{
					"text":    "Sign In",
					"variant": "primary",
				},
			},
		)
	}

	// Rule 3: data view. Table wins whenever table or dashboard is present;
	// a list is only emitted for list-without-table inputs. Never both.
	if seen[intent.TypeTable] || seen[intent.TypeList] || seen[intent.TypeDashboard] {
		if seen[intent.TypeTable] || seen[intent.TypeDashboard] {
			s.appendRow(root, "table-1")
			components = append(components, Component{
				ID:   "table-1",
				Type: ComponentTable,
				Props: map[string]interface{}{
					"columns": []string{"Name", "Status", "Updated"},
					"rows":    []interface{}{},
				},
			})
		} else {
			s.appendRow(root, "list-1")
			components = append(components, Component{
				ID:   "list-1",
				Type: ComponentList,
				Props: map[string]interface{}{
					"items":      []interface{}{},
					"primaryKey": "title",
				},
			})
		}
	}

	// Rule 4: generic form, unless the login rule already placed one
	if seen[intent.TypeForm] && !seen[intent.TypeLogin] {
		s.appendRow(root, "form-2")
		components = append(components, Component{
			ID:   "form-2",
			Type: ComponentForm,
			Props: map[string]interface{}{
				"fields": []map[string]string{
					{"name": "name", "type": "text"},
					{"name": "description", "type": "textarea"},
				},
			},
		})
	}

	// Rule 5: generic button, same login exclusion
	if seen[intent.TypeButton] && !seen[intent.TypeLogin] {
		s.appendRow(root, "button-2")
		components = append(components, Component{
			ID:   "button-2",
			Type: ComponentButton,
			Props: map[string]interface{}{
				"text":    "Submit",
				"variant": "secondary",
			},
		})
	}

	// A wireframe is never a childless container
	if len(root.Children) == 0 {
		s.appendRow(root)
	}

	return Spec{
		ID:         root.ID,
		Layout:     root,
		Components: components,
		Metadata: map[string]string{
			"generator": generatorName,
			"version":   generatorVersion,
		},
	}
}

// appendRow adds one row holding a single full-width column whose children
// are the given component refs.
func (s *Synthesizer) appendRow(root *Node, refs ...string) {
	children := make([]Child, 0, len(refs))
	for _, ref := range refs {
		children = append(children, NewRefChild(ref))
	}

	column := &Node{
		Type:     NodeColumn,
		ID:       s.ids.Generate(columnPrefix),
		Span:     FullWidthSpan,
		Children: children,
	}
	row := &Node{
		Type:     NodeRow,
		ID:       s.ids.Generate(rowPrefix),
		Children: []Child{NewNodeChild(column)},
	}

	root.Children = append(root.Children, NewNodeChild(row))
}
