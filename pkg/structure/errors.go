package structure

import "errors"

var (
	// ErrNoAttribute is returned when reading, writing or deleting a name the type does not declare.
	ErrNoAttribute = errors.New("no such attribute")

	// ErrArity is returned when a constructor receives the wrong set of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrInvalidDeclaration is returned by Build for malformed type declarations.
	ErrInvalidDeclaration = errors.New("invalid type declaration")

	// ErrInvalidSchema is returned when a schema document cannot be turned into types.
	ErrInvalidSchema = errors.New("invalid schema")
)
