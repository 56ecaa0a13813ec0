// Package wireframe expands intent sets into wireframe specifications.
//
// A wireframe spec is a tree of container/row/column nodes referencing a
// flat list of typed components (Navbar, Form, Button, Table, List). Rules
// fire in a fixed order against the deduplicated set of recognized intent
// types; the resulting structure, component ids and props are fully
// deterministic for a given type set. Only the opaque ids of structural
// nodes are random, and those sit behind an injectable generator.
//
// Key Components:
//   - Node/Child: Recursive layout tree with mixed node and component-id children
//   - Component: Tagged variant carrying per-type props
//   - Synthesizer: Intent type set to Spec transformation
package wireframe
