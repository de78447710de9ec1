package kvstore

import (
	"errors"

	"movecar/internal/pkg/errs"
)

type StoreErrorKind string

const (
	KindStoreFailure StoreErrorKind = "STORE_FAILURE"
	KindEncoding     StoreErrorKind = "ENCODING"
)

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr tags a low-level failure and marks it with
// errs.ErrStoreUnavailable so callers can classify it with errors.Is.
func WrapStoreErr(kind StoreErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return errs.Mark(StoreError{Kind: kind, msg: msg, err: err}, errs.ErrStoreUnavailable)
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
