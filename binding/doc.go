// Package binding maps XML schema types to Go records through declarative
// tables walked by one generic decoder and encoder.
//
// # Overview
//
// A Schema describes one record type: its schema type name, an attribute
// table, an element table in declaration order and an optional character
// content field. Decoding walks a parsed element tree and fills a record;
// encoding walks a record and emits writer events in declaration order.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  xmlcursor  │────▶│  Schema[T]  │────▶│   *T        │
//	│  (Reader)   │     │  (Decode)   │     │  (record)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │
//	                           ▼
//	                    ┌─────────────┐
//	                    │ Diagnostics │
//	                    └─────────────┘
//
// # Fields
//
// Fields are declared with accessor functions returning a pointer into the
// record, so one function serves both directions:
//
//	var envEntry = binding.NewSchema[EnvEntry](
//	    xml.Name{Space: ns, Local: "env-entryType"},
//	    binding.ID(func(e *EnvEntry) *string { return &e.ID }),
//	    binding.Required(binding.Scalar("env-entry-name", binding.CollapsedString,
//	        func(e *EnvEntry) *string { return &e.Name })),
//	    binding.Scalar("env-entry-value", binding.String,
//	        func(e *EnvEntry) *string { return &e.Value }),
//	)
//
// The element kinds and their decode behaviour:
//
//	Scalar    single text element; a later occurrence overwrites
//	Scalars   repeated text element; ordered slice
//	Unique    repeated text element; insertion-ordered Set
//	One       single nested record; a later occurrence overwrites
//	Many      repeated nested record; ordered slice, xsi:nil members kept as nil
//	Indexed   repeated nested record; Keyed collection, last write wins
//	Wrapped   wrapper around repeated text items; last wrapper wins
//	Choice    wrapper around nested records of several types
//
// Repeated fields accumulate their members while the children are read
// and publish them to the record after the last child. A field that does
// not occur in the document is left untouched, which makes DecodeInto a
// merge: only the fields present in the new document are replaced.
//
// # Derived Types
//
// A schema may register derived schema types with Derive. When decoding,
// an xsi:type naming a derived type hands the element to that schema; an
// unknown xsi:type is reported and yields no record. When encoding, the
// function installed with WithTypeOf picks the derived schema, whose name
// is written as xsi:type.
//
// # Diagnostics
//
// Nothing short of malformed XML stops a walk. Unknown elements and
// attributes, adapter failures, nil members and missing required values are
// recorded as Conditions in the Context and returned by Unmarshal and
// Marshal alongside the result. Every condition is also logged at debug
// level on the "jeedd.binding" logger.
//
// # Thread Safety
//
// Schemas are built during package initialisation and are read-only
// afterwards; they may be shared by concurrent calls. A Context belongs
// to one call.
package binding
