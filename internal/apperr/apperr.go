package apperr

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind classifies an error for transport mapping.
type Kind string

const (
	KindParseData   Kind = "parse_data"
	KindComputation Kind = "computation"
	KindWrongMethod Kind = "wrong_method"
	KindEmptyBody   Kind = "empty_body"
	KindNotFound    Kind = "not_found"
	KindServerSide  Kind = "server_side"
	KindUnknown     Kind = "unknown"
)

var (
	ErrBadDateComparison = errors.New("bad date comparison: from is after to")
	ErrBadNumberCast     = errors.New("bad number cast")
)

// Error carries a kind, a human readable detail and an optional cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return e.Detail + ": " + e.Err.Error()
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func ParseData(format string, args ...any) error {
	return &Error{Kind: KindParseData, Detail: fmt.Sprintf(format, args...)}
}

func Computation(err error) error {
	return &Error{Kind: KindComputation, Err: err}
}

func WrongMethod(method string) error {
	return &Error{Kind: KindWrongMethod, Detail: "method " + method + " not allowed"}
}

func EmptyBody() error {
	return &Error{Kind: KindEmptyBody, Detail: "request body is empty"}
}

func NotFound(key string) error {
	return &Error{Kind: KindNotFound, Detail: key + " not found"}
}

func ServerSide(detail string, err error) error {
	return &Error{Kind: KindServerSide, Detail: detail, Err: err}
}

// KindOf reports the kind of err. Bare computation sentinels count as
// Computation, anything else unclassified is Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrBadDateComparison) || errors.Is(err, ErrBadNumberCast) {
		return KindComputation
	}
	return KindUnknown
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindParseData, KindEmptyBody:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindWrongMethod:
		return http.StatusMethodNotAllowed
	case "":
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// GRPCCode maps err to a gRPC status code.
func GRPCCode(err error) codes.Code {
	switch KindOf(err) {
	case KindParseData, KindEmptyBody:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindWrongMethod:
		return codes.Unimplemented
	case "":
		return codes.OK
	}
	return codes.Internal
}

// CheckedUint32 converts v to uint32 or fails with ErrBadNumberCast.
func CheckedUint32(v int) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, Computation(fmt.Errorf("%w: %d does not fit in uint32", ErrBadNumberCast, v))
	}
	return uint32(v), nil
}

// CheckedMul returns a*b for non-negative operands or fails with
// ErrBadNumberCast when the product does not fit in int.
func CheckedMul(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, Computation(fmt.Errorf("%w: %d * %d has a negative operand", ErrBadNumberCast, a, b))
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, Computation(fmt.Errorf("%w: %d * %d overflows int", ErrBadNumberCast, a, b))
	}
	return a * b, nil
}
