package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies this service in google.rpc.ErrorInfo details
const ErrorDomain = "bh2e.sheet"

// ToGRPCError converts an error to a gRPC status error. The error code and its
// scalar metadata travel as a google.rpc.ErrorInfo detail so clients can read the
// refusal reason without parsing the message.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   customErr.Code.String(),
		Domain:   ErrorDomain,
		Metadata: stringMeta(customErr.Meta),
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// stringMeta keeps the metadata values that render as a single token
func stringMeta(meta map[string]interface{}) map[string]string {
	if len(meta) == 0 {
		return nil
	}

	out := make(map[string]string, len(meta))
	for k, v := range meta {
		switch v := v.(type) {
		case string:
			out[k] = v
		case int, int32, int64, bool:
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// FromGRPCError converts a gRPC error back to an Error. Metadata carried in an
// ErrorInfo detail is restored with string values.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}

		keys := make([]string, 0, len(info.GetMetadata()))
		for k := range info.GetMetadata() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out.WithMeta(k, info.GetMetadata()[k])
		}
	}

	return out
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
