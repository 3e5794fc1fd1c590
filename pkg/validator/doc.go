// Package validator provides composable field validators and the rule-building
// helpers used to check declarations.
//
// A Validator checks one value bound to a named field. Constraints are small
// validators that compose with Chain, so a "positive integer" is simply
// Chain(Type[int](), Positive()): the type check runs first, the range check
// second, and the first failure wins.
//
// Kinds bundle a validator with a name and a text parser. They are what
// structure declarations reference, either directly (validator.PositiveFloat())
// or by name through a Registry. A Registry is an explicit value: callers
// create one, register their own kinds, and hand it to whatever resolves names.
// There is no package-level registry.
//
// # Errors
//
// Every failed check returns a ValidationError whose Kind is one of the
// sentinels ErrType (the value has the wrong Go type) or ErrValue (the value is
// negative or empty where that is not allowed). Use errors.Is, IsTypeError or
// IsValueError to branch on the class:
//
//	_, err := validator.PositiveInteger().Check("shares", -50)
//	if validator.IsValueError(err) {
//	    // rejected: negative
//	}
//
// Rule and Apply aggregate several independent checks into ValidationErrors,
// which implements error and unwraps to each individual failure.
package validator
