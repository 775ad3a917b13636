package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/store/file"
)

func TestAttendanceAppend(t *testing.T) {
	fs, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err)
	l := NewAttendanceLedger(fs)

	t.Run("date defaults to today", func(t *testing.T) {
		rec, err := l.Append(models.AttendanceRecord{StudentID: 1, Status: models.StatusPresent})
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format("2006-01-02"), rec.Date)
	})

	t.Run("explicit date is kept", func(t *testing.T) {
		rec, err := l.Append(models.AttendanceRecord{StudentID: 1, Status: models.StatusAbsent, Date: "2024-01-15"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", rec.Date)
	})

	t.Run("studentId and status are required", func(t *testing.T) {
		_, err := l.Append(models.AttendanceRecord{Status: models.StatusPresent})
		assert.ErrorIs(t, err, ErrMissingField)

		_, err = l.Append(models.AttendanceRecord{StudentID: 1})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("orphaned student reference is tolerated", func(t *testing.T) {
		rec, err := l.Append(models.AttendanceRecord{StudentID: 99999, Status: models.StatusPresent})
		require.NoError(t, err)
		assert.Equal(t, int64(99999), rec.StudentID)
	})

	records := l.List()
	require.Len(t, records, 3)
	seen := map[int64]bool{}
	for _, rec := range records {
		assert.NotZero(t, rec.ID)
		assert.False(t, seen[rec.ID], "id %d assigned twice", rec.ID)
		seen[rec.ID] = true
	}
}

func TestMarksAppend(t *testing.T) {
	fs, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err)
	l := NewMarksLedger(fs)

	t.Run("valid mark is appended", func(t *testing.T) {
		rec, err := l.Append(models.MarkRecord{StudentID: 1, Subject: "Maths", Exam: "Mid-1", Marks: "88"})
		require.NoError(t, err)
		assert.NotZero(t, rec.ID)
		assert.Equal(t, "88", rec.Marks)
	})

	t.Run("studentId, subject and exam are required", func(t *testing.T) {
		_, err := l.Append(models.MarkRecord{Subject: "Maths", Exam: "Mid-1"})
		assert.ErrorIs(t, err, ErrMissingField)

		_, err = l.Append(models.MarkRecord{StudentID: 1, Exam: "Mid-1"})
		assert.ErrorIs(t, err, ErrMissingField)

		_, err = l.Append(models.MarkRecord{StudentID: 1, Subject: "Maths"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("marks value itself is optional", func(t *testing.T) {
		rec, err := l.Append(models.MarkRecord{StudentID: 1, Subject: "Physics", Exam: "Mid-1"})
		require.NoError(t, err)
		assert.Equal(t, "", rec.Marks)
	})

	assert.Len(t, l.List(), 2)
}
