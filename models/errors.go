package models

import "github.com/pkg/errors"

// Error kinds surfaced to callers. Wrap them with errors.Wrap so that
// errors.Is still matches.
var (
	ErrConfigMissing    = errors.New("required configuration missing")
	ErrStoreUnavailable = errors.New("order store unavailable")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrRender           = errors.New("document render failed")
)

// KindError attaches a kind to an underlying cause.
type KindError struct {
	Kind error
	Op   string
	Err  error
}

func (e *KindError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

func (e *KindError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StoreError marks err as a connectivity/authorization failure of the store.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: ErrStoreUnavailable, Op: op, Err: err}
}

// ValidationError builds a validation failure with a user-facing message.
func ValidationError(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}
