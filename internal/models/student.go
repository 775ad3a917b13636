package models

import (
	"github.com/go-playground/validator/v10"
)

type Student struct {
	ID         int64  `json:"id"`
	RollNo     string `json:"rollNo" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	CGPA       string `json:"cgpa"`
	Phone      string `json:"phone"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`
	DOB        string `json:"dob"`
	Photo      string `json:"photo"`
}

// StudentPatch carries a partial update: nil fields keep their prior value.
type StudentPatch struct {
	RollNo     *string `json:"rollNo"`
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Semester   *string `json:"semester"`
	CGPA       *string `json:"cgpa"`
	Phone      *string `json:"phone"`
	FatherName *string `json:"fatherName"`
	MotherName *string `json:"motherName"`
	DOB        *string `json:"dob"`
}

func (s *Student) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
