// Package schema defines the boundary between the traversal engine and the code that knows how to
// enumerate and classify the fields of a record. Adapters (reflection, decoded documents) implement
// Accessor; the engine never inspects values on its own.
package schema
