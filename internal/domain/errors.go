package domain

import "fmt"

// ErrorKind groups scan rejections by how the operator should react.
type ErrorKind int

const (
	KindClassification ErrorKind = iota + 1
	KindMismatch
	KindNotFound
	KindOverScan
)

func (k ErrorKind) String() string {
	switch k {
	case KindClassification:
		return "classification"
	case KindMismatch:
		return "mismatch"
	case KindNotFound:
		return "not_found"
	case KindOverScan:
		return "over_scan"
	default:
		return "unknown"
	}
}

type Reason string

const (
	ReasonUnreadable    Reason = "unreadable"
	ReasonWrongPart     Reason = "wrong_part"
	ReasonMissingSerial Reason = "missing_serial"
	ReasonNotInList     Reason = "not_in_list"
	ReasonFulfilled     Reason = "fulfilled"
)

// ScanError is the rejection of a single scan. It never aborts a session; the
// next scan is a fresh attempt.
type ScanError struct {
	Kind   ErrorKind
	Reason Reason
	Input  string
}

func (e *ScanError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("scan rejected: %s (%s)", e.Kind, e.Reason)
	}
	return fmt.Sprintf("scan rejected: %s (%s): %q", e.Kind, e.Reason, e.Input)
}

// Is matches on Kind, and on Reason when the target sets one.
func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrClassification = &ScanError{Kind: KindClassification}
	ErrMismatch       = &ScanError{Kind: KindMismatch}
	ErrNotFound       = &ScanError{Kind: KindNotFound}
	ErrOverScan       = &ScanError{Kind: KindOverScan}
)

func NewScanError(kind ErrorKind, reason Reason, input string) *ScanError {
	return &ScanError{Kind: kind, Reason: reason, Input: input}
}
