// Package document provides schema.Accessor for decoded JSON and YAML documents.
//
// JSON is decoded into an order preserving model (*Object, Array), so that record fields are visited
// in document order. YAML is traversed directly on the *yaml.Node tree, aliases resolve to their
// anchors, which lets the engine detect recursive anchors as cycles.
package document
