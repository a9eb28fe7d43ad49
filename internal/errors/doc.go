// Package errors provides structured errors for rpg-porter.
//
// Every error carries a Code, a user-facing message, an optional cause and
// free-form metadata:
//
//	err := errors.NotFound("token not found").
//	    WithMeta("token_id", tokenID)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load source token")
//	}
//
// Wrap keeps the code of the wrapped error so callers can branch with the
// Is* helpers regardless of how many layers added context.
//
// # Transfer taxonomy
//
// Export and import map their failure classes onto codes:
//
//   - Validation (source token missing or not a hero): FailedPrecondition
//   - Parse (absent or malformed import document): InvalidArgument
//   - Schema (nested record overwritten with a scalar): Aborted
//   - UnknownType (document names an unregistered record type): Unimplemented
//   - ResolutionMiss (reference or selection did not resolve): NotFound
//
// Only Validation and Parse abort a pipeline. Schema and UnknownType are
// logged and the offending field is skipped. ResolutionMiss is never returned
// from the pipelines at all; it exists so resolvers can log a uniform value.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
