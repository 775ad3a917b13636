package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/registry"
	"github.com/shrimpsizemoose/skolbok/internal/store/file"
)

type testFixture struct {
	students   *registry.StudentRegistry
	attendance *registry.AttendanceLedger
	marks      *registry.MarksLedger
	agg        *Aggregator
}

func setupFixture(t *testing.T) *testFixture {
	t.Helper()

	fs, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err, "Failed to create store")

	students := registry.NewStudentRegistry(fs)
	attendance := registry.NewAttendanceLedger(fs)
	marks := registry.NewMarksLedger(fs)

	return &testFixture{
		students:   students,
		attendance: attendance,
		marks:      marks,
		agg:        NewAggregator(students, attendance, marks),
	}
}

func (f *testFixture) addStudent(t *testing.T, rollNo, name string) int64 {
	t.Helper()
	created, err := f.students.Create(models.Student{RollNo: rollNo, Name: name})
	require.NoError(t, err)
	return created.ID
}

func (f *testFixture) addMarks(t *testing.T, studentID int64, values ...string) {
	t.Helper()
	for i, v := range values {
		_, err := f.marks.Append(models.MarkRecord{
			StudentID: studentID,
			Subject:   fmt.Sprintf("Subject %d", i+1),
			Exam:      "Mid-1",
			Marks:     v,
		})
		require.NoError(t, err)
	}
}

func TestAttendanceSummary(t *testing.T) {
	f := setupFixture(t)
	alice := f.addStudent(t, "R1", "Alice")
	bob := f.addStudent(t, "R2", "Bob")

	for _, status := range []string{models.StatusPresent, models.StatusPresent, models.StatusAbsent} {
		_, err := f.attendance.Append(models.AttendanceRecord{StudentID: alice, Status: status})
		require.NoError(t, err)
	}

	t.Run("counts and percentage", func(t *testing.T) {
		summary := f.agg.AttendanceSummary(alice)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 2, summary.Present)
		assert.Equal(t, 1, summary.Absent)
		assert.Equal(t, "66.7%", summary.Percentage)
	})

	t.Run("no records means no-data sentinel, not a division error", func(t *testing.T) {
		summary := f.agg.AttendanceSummary(bob)
		assert.Equal(t, 0, summary.Total)
		assert.Equal(t, NoData, summary.Percentage)
	})
}

func TestMarksSummaryGradeThresholds(t *testing.T) {
	testCases := []struct {
		name  string
		marks []string
		grade string
	}{
		{"average exactly 90 is O", []string{"90"}, "O"},
		{"average 89.9 is A+", []string{"89.9"}, "A+"},
		{"average 80 is A+", []string{"70", "90"}, "A+"},
		{"average 79.9 is A", []string{"79.9"}, "A"},
		{"average 60 is B", []string{"60"}, "B"},
		{"average 50 is C", []string{"50"}, "C"},
		{"average 49.9 is F", []string{"49.9"}, "F"},
		{"non-numeric marks count as zero", []string{"abc", "100"}, "C"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupFixture(t)
			id := f.addStudent(t, "R1", "Alice")
			f.addMarks(t, id, tc.marks...)

			summary := f.agg.MarksSummary(id)
			require.Len(t, summary.Rows, len(tc.marks))
			assert.Equal(t, tc.grade, summary.Grade)
		})
	}
}

func TestMarksSummaryNoData(t *testing.T) {
	f := setupFixture(t)
	id := f.addStudent(t, "R1", "Alice")

	summary := f.agg.MarksSummary(id)
	assert.Empty(t, summary.Rows)
	assert.Equal(t, NoData, summary.Grade)
}

func TestViewFor(t *testing.T) {
	f := setupFixture(t)
	alice := f.addStudent(t, "R1", "Alice")
	bob := f.addStudent(t, "R2", "Bob")
	f.addMarks(t, alice, "95")

	t.Run("teacher may view any student", func(t *testing.T) {
		view, err := f.agg.ViewFor(RoleTeacher, 0, alice)
		require.NoError(t, err)
		assert.Equal(t, "Alice", view.Student.Name)
		assert.Equal(t, "O", view.Marks.Grade)
	})

	t.Run("student sees only the id bound at login", func(t *testing.T) {
		view, err := f.agg.ViewFor(RoleStudent, bob, alice)
		require.NoError(t, err)
		assert.Equal(t, "Bob", view.Student.Name, "selection must not override the login binding")
	})

	t.Run("admin role is denied", func(t *testing.T) {
		_, err := f.agg.ViewFor(RoleAdmin, 0, alice)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		_, err := f.agg.ViewFor(RoleTeacher, 0, 98765)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("deleted student leaves orphaned ledger rows but no profile", func(t *testing.T) {
		_, err := f.students.Delete(alice)
		require.NoError(t, err)

		_, err = f.agg.ViewFor(RoleTeacher, 0, alice)
		assert.ErrorIs(t, err, registry.ErrNotFound)
		assert.Len(t, f.marks.List(), 1, "ledger entries survive the student")
	})
}
