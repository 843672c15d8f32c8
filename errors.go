package main

import "fmt"

// Kind tags the class of failure a boundary function reports. Components
// never leak their own internal status codes across a boundary; every
// failure is translated into one of these before it leaves BuildTree,
// Encode, Decode, ApplyLossy, Reconstruct, or the PGM reader/writer.
type Kind int

const (
	KindInvalidParam Kind = iota
	KindIO
	KindFormat
	KindSize
	KindMemory
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParam:
		return "invalid parameter"
	case KindIO:
		return "I/O failure"
	case KindFormat:
		return "format error"
	case KindSize:
		return "size error"
	case KindMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// Error is the single tagged error type returned across every component
// boundary in this codec. Detail carries a human-readable explanation;
// Err, if set, is the underlying cause (wrapped, so errors.Is/errors.As
// still reach sentinel errors like ErrBadMagic).
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(k Kind, detail string) *Error {
	return &Error{Kind: k, Detail: detail}
}

func wrapError(k Kind, detail string, err error) *Error {
	return &Error{Kind: k, Detail: detail, Err: err}
}

// Sentinel errors for the specific conditions callers most commonly need
// to test for with errors.Is. Each still carries a Kind, reachable via
// errors.As(err, &codecErr).
var (
	ErrBadMagic       = &Error{Kind: KindFormat, Detail: "bad magic bytes"}
	ErrTreeDepth      = &Error{Kind: KindFormat, Detail: "tree depth out of range 1..32"}
	ErrTruncated      = &Error{Kind: KindFormat, Detail: "unexpected end of bit stream"}
	ErrFourthMean     = &Error{Kind: KindFormat, Detail: "fourth-mean reconstruction out of range"}
	ErrNotSquare      = &Error{Kind: KindSize, Detail: "image is not square"}
	ErrNotPowerOfTwo  = &Error{Kind: KindSize, Detail: "image side is not a power of two"}
	ErrMaxValue       = &Error{Kind: KindSize, Detail: "max value exceeds 255"}
	ErrInvalidAlpha   = &Error{Kind: KindInvalidParam, Detail: "alpha must be > 1 for lossy filtering"}
	ErrModeConflict   = &Error{Kind: KindInvalidParam, Detail: "compress and decompress are mutually exclusive"}
	ErrMissingInput   = &Error{Kind: KindInvalidParam, Detail: "input file is required"}
)
