package models

import (
	"github.com/go-playground/validator/v10"
)

type TimetableSlot struct {
	ID          int64  `json:"id"`
	Day         string `json:"day" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	TeacherName string `json:"teacherName"`
	Room        string `json:"room"`
	Section     string `json:"section"`
}

type TimetableSlotPatch struct {
	Day         *string `json:"day"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Subject     *string `json:"subject"`
	TeacherName *string `json:"teacherName"`
	Room        *string `json:"room"`
	Section     *string `json:"section"`
}

func (t *TimetableSlot) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
