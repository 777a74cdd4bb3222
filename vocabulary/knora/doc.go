// Package knora provides the DSP-API vocabulary used when turning XML data into
// RDF and when building SHACL shapes for it.
//
// # Namespaces
//
//   - knora-api: the API's base ontology (value classes, value predicates, file properties)
//   - api-shapes: helper predicates and fixed shapes that exist only for validation
//   - salsah-gui: GUI hints used to pick the text value shape of a property
//   - data: the namespace resources and value nodes are minted in
//
// # Type Tables
//
// The tables in mappings.go are shared by the RDF-like data builder and the data
// graph constructor. Every ValueType maps to exactly one RDFPropTypeInfo (the
// value node's class, its payload predicate and the payload datatype), so the
// two directions cannot drift apart.
package knora
