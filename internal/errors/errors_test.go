package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "item not found")
	s.Equal("NOT_FOUND: item not found", err.Error())
	s.Equal(errors.CodeNotFound, err.Code)
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load actor")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load actor", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotEligiblef("no_usage_die", "item has no usage die")
	wrapped := errors.Wrap(baseErr, "reset refused")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.True(errors.IsNotEligible(wrapped))
	s.Equal("no_usage_die", errors.GetMeta(wrapped)[errors.MetaReason])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestDomainConstructors() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
		code  errors.Code
	}{
		{
			name:  "not eligible",
			err:   errors.NotEligiblef("quantity_zero", "supply is depleted"),
			check: errors.IsNotEligible,
			code:  errors.CodeFailedPrecondition,
		},
		{
			name:  "invalid level",
			err:   errors.InvalidLevel(11, 1, 10),
			check: errors.IsInvalidLevel,
			code:  errors.CodeOutOfRange,
		},
		{
			name:  "unknown variant",
			err:   errors.UnknownVariant("magic kind", "ritual"),
			check: errors.IsUnknownVariant,
			code:  errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.check(tc.err))
			s.Equal(tc.code, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestPlainFailedPreconditionIsNotEligibility() {
	err := errors.Newf(errors.CodeFailedPrecondition, "something else")
	s.False(errors.IsNotEligible(err))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	err := errors.ToGRPCError(errors.NotFoundf("item %s not found", "itm_1"))

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("item itm_1 not found", st.Message())

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestToGRPCErrorAttachesErrorInfo() {
	err := errors.ToGRPCError(errors.InvalidLevel(11, 1, 10))

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.OutOfRange, st.Code())
	s.Require().Len(st.Details(), 1)

	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("OUT_OF_RANGE", info.GetReason())
	s.Equal(errors.ErrorDomain, info.GetDomain())
	s.Equal(map[string]string{errors.MetaLevel: "11"}, info.GetMetadata())
}

func (s *ErrorsTestSuite) TestToGRPCErrorDropsStructuredMeta() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("item_id")

	st, ok := status.FromError(errors.ToGRPCError(vb.Build()))
	s.Require().True(ok)
	s.Require().Len(st.Details(), 1)

	info := st.Details()[0].(*errdetails.ErrorInfo)
	s.Empty(info.GetMetadata())
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("disk on fire")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Empty(st.Details())
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.FailedPrecondition, "nope"))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
	s.Equal("nope", errors.GetMessage(err))
	s.False(errors.IsNotEligible(err))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsEligibility() {
	original := errors.NotEligiblef("armour_broken", "every armour die is broken")

	restored := errors.FromGRPCError(errors.ToGRPCError(original))

	s.True(errors.IsNotEligible(restored))
	s.Equal("armour_broken", errors.GetMeta(restored)[errors.MetaReason])
	s.Equal("every armour die is broken", errors.GetMessage(restored))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsVariant() {
	restored := errors.FromGRPCError(errors.ToGRPCError(errors.UnknownVariant("kind", "lucky")))

	s.True(errors.IsUnknownVariant(restored))
	s.Equal("kind", errors.GetMeta(restored)[errors.MetaVariant])
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())

	vb.RequiredField("ActorRepo")
	errors.ValidateRange("level", 12, 1, 10, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("validation failed: ActorRepo is required; level must be between 1 and 10", errors.GetMessage(err))

	fields, ok := errors.GetMeta(err)[errors.MetaFields].([]errors.FieldError)
	s.Require().True(ok)
	s.Equal([]errors.FieldError{
		{Field: "ActorRepo", Message: "is required"},
		{Field: "level", Message: "must be between 1 and 10"},
	}, fields)
}

func (s *ErrorsTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("LogLimit", 1, 1, vb)
	s.False(vb.HasErrors())

	errors.ValidateMin("LogLimit", 0, 1, vb)
	s.Contains(vb.Build().Error(), "LogLimit must be at least 1")
}
