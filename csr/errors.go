package csr

import (
	"fmt"

	"github.com/pkg/errors"
)

// MissingFieldError is returned when a mandatory subject field is absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsMissingField returns the missing field code,
// if err is caused by MissingFieldError
func IsMissingField(err error) (string, bool) {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return mf.Field, true
	}
	return "", false
}
