// Package errors provides structured errors for the sheet service.
//
// Errors carry a code, a message, an optional cause and metadata:
//
//	err := errors.NotFoundf("item %s not found", itemID)
//	err := errors.Wrap(err, "failed to resolve owner")
//
// The resource engine reports refusals through domain constructors that map onto
// the generic codes:
//
//   - NotEligiblef: FAILED_PRECONDITION with a "reason" tag. The action is a silent
//     no-op; callers log it at warn level and carry on.
//   - InvalidLevel: OUT_OF_RANGE. The item is dropped from view data.
//   - UnknownVariant: INVALID_ARGUMENT with a "variant" tag. The item is dropped.
//
// Config structs validate through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	return vb.Build()
//
// Handlers convert to gRPC with ToGRPCError, which attaches the code and scalar
// metadata as a google.rpc.ErrorInfo detail. FromGRPCError restores them.
package errors
