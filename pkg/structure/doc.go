// Package structure declares record types whose fields are validated on
// every assignment.
//
// A type is declared once with a Builder. Each Field call appends a
// (name, kind) pair; declaration order becomes the positional parameter order
// of the generic constructor:
//
//	var Stock = structure.Define("Stock").
//	    Field("name", validator.NonEmptyString()).
//	    Field("shares", validator.PositiveInteger()).
//	    Field("price", validator.PositiveFloat()).
//	    MustBuild()
//
//	s, err := Stock.New("GOOG", 100, 490.1)
//	err = s.Set("shares", -50) // validator.ErrValue, shares stays 100
//	err = s.Set("share", 100)  // structure.ErrNoAttribute
//
// Instances accept only declared names. Names starting with ReservedPrefix
// are kept in a private slot without validation. A type built with Extends
// inherits its parent's fields; redeclaring one replaces its kind in place.
//
// Kinds can also be referenced by name through a validator.Registry
// (Builder.FieldOf) and whole types can be loaded from YAML with LoadSchema.
//
// OnDefine hooks observe type creation and WithTracer logs each field access.
package structure
