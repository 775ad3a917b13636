package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	StatusPresent = "P"
	StatusAbsent  = "A"
)

type AttendanceRecord struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StudentID int64  `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

func (a *AttendanceRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
