package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/registry"
)

// NoData marks a derived value with nothing behind it: attendance percentage
// with zero records, grade with zero marks.
const NoData = "-"

var ErrNotAuthorized = errors.New("profile is only for teacher and student roles")

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type AttendanceSummary struct {
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Percentage string `json:"percentage"`
}

type MarkRow struct {
	Subject string `json:"subject"`
	Exam    string `json:"exam"`
	Marks   string `json:"marks"`
}

type MarksSummary struct {
	Rows  []MarkRow `json:"rows"`
	Grade string    `json:"grade"`
}

type ProfileView struct {
	Student    models.Student    `json:"student"`
	Attendance AttendanceSummary `json:"attendance"`
	Marks      MarksSummary      `json:"marks"`
}

// Aggregator is the read side of the student profile: it derives attendance
// percentage and grade from the ledgers and never mutates anything.
type Aggregator struct {
	students   *registry.StudentRegistry
	attendance *registry.AttendanceLedger
	marks      *registry.MarksLedger
}

func NewAggregator(students *registry.StudentRegistry, attendance *registry.AttendanceLedger, marks *registry.MarksLedger) *Aggregator {
	return &Aggregator{
		students:   students,
		attendance: attendance,
		marks:      marks,
	}
}

func (a *Aggregator) AttendanceSummary(studentID int64) AttendanceSummary {
	summary := AttendanceSummary{Percentage: NoData}

	for _, rec := range a.attendance.List() {
		if rec.StudentID != studentID {
			continue
		}
		summary.Total++
		if rec.Status == models.StatusPresent {
			summary.Present++
		}
	}
	summary.Absent = summary.Total - summary.Present

	if summary.Total > 0 {
		pct := float64(summary.Present) / float64(summary.Total) * 100
		summary.Percentage = fmt.Sprintf("%.1f%%", pct)
	}

	return summary
}

func (a *Aggregator) MarksSummary(studentID int64) MarksSummary {
	summary := MarksSummary{Grade: NoData}

	var total float64
	for _, rec := range a.marks.List() {
		if rec.StudentID != studentID {
			continue
		}
		summary.Rows = append(summary.Rows, MarkRow{
			Subject: rec.Subject,
			Exam:    rec.Exam,
			Marks:   rec.Marks,
		})
		val, err := strconv.ParseFloat(rec.Marks, 64)
		if err != nil {
			val = 0
		}
		total += val
	}

	if len(summary.Rows) > 0 {
		summary.Grade = gradeFor(total / float64(len(summary.Rows)))
	}

	return summary
}

func gradeFor(avg float64) string {
	switch {
	case avg >= 90:
		return "O"
	case avg >= 80:
		return "A+"
	case avg >= 70:
		return "A"
	case avg >= 60:
		return "B"
	case avg >= 50:
		return "C"
	default:
		return "F"
	}
}

// ViewFor composes the role-scoped profile. A teacher may view any selected
// student; a student only ever sees the id bound at login, whatever was
// selected; every other role is denied.
func (a *Aggregator) ViewFor(role string, requestingStudentID, selectedStudentID int64) (*ProfileView, error) {
	var id int64
	switch role {
	case RoleTeacher:
		id = selectedStudentID
	case RoleStudent:
		id = requestingStudentID
	default:
		return nil, ErrNotAuthorized
	}

	student, err := a.students.Get(id)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		Student:    *student,
		Attendance: a.AttendanceSummary(id),
		Marks:      a.MarksSummary(id),
	}, nil
}
