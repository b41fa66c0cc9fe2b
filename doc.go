// Package dtfabric provides declarative, schema-driven binary-format
// tooling for Go applications.
//
// dtFabric describes the layout of a binary format in a YAML-based
// definition language. The library validates the schema, resolves
// cross-references, and produces runtime maps that parse a byte buffer into
// structured values; the schema is the source of truth, with no
// hand-written parsers.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no dependencies on the core library tier):
//	  - location: Source positions, spans, and document identifiers
//	  - diag: Structured diagnostics with stable error codes
//	  - expr: The size/count/condition expression language
//
//	Core library tier:
//	  - definition: The typed object graph of data-type definitions
//	  - registry: The name+alias-keyed definition store
//	  - reader: Multi-document YAML ingestion and cross-reference resolution
//	  - mapper: DataTypeMap construction and byte-stream decoding
//
// # Entry Points
//
// Schema reading:
//
//	import "github.com/libyal/dtfabric-go/reader"
//
//	reg, result := reader.Read(strings.NewReader(documents))
//	if result.HasErrors() {
//	    // schema or resolution errors; reg must not be used
//	}
//
// Decoding:
//
//	import "github.com/libyal/dtfabric-go/mapper"
//
//	def, _ := reg.Lookup("point3d")
//	m, err := mapper.NewFactory().Build(def)
//	if err != nil {
//	    // unresolved or unsupported definition
//	}
//	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
//
// Every Map is immutable after construction and safe for concurrent use
// provided each decode receives its own MapContext.
package dtfabric
