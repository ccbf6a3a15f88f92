// Package errors provides structured error types for the gbio library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, input line,
// got/want shape names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExtract, errors.KindTypeMismatch).
//		Path("features", "location").
//		Got("*record.Reference").
//		Want("record.Location").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseDump, path, "int", "*record.Record")
//	err := errors.Syntax(42, "truncated LOCUS line")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
