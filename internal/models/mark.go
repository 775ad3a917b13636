package models

import (
	"github.com/go-playground/validator/v10"
)

// MarkRecord keeps Marks as a string: records accept whatever the form
// submits and non-numeric values count as zero when averaging.
type MarkRecord struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Exam      string `json:"exam" validate:"required"`
	Marks     string `json:"marks"`
}

func (m *MarkRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
