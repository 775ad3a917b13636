package registry

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateRollNo = errors.New("a student with this roll number already exists")
	ErrMissingField    = errors.New("missing required field")
)

// missingField converts a validator failure into the ErrMissingField taxonomy,
// naming the offending fields. Validation runs before any mutation, so a
// rejected request leaves the collection untouched.
func missingField(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := ""
		for i, fe := range verrs {
			if i > 0 {
				fields += ", "
			}
			fields += fe.Field()
		}
		return fmt.Errorf("%w: %s", ErrMissingField, fields)
	}
	return fmt.Errorf("%w: %v", ErrMissingField, err)
}
