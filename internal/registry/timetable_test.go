package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/store/file"
)

func newTimetableRegistry(t *testing.T) *TimetableRegistry {
	t.Helper()

	fs, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err, "Failed to create store")
	return NewTimetableRegistry(fs)
}

func slot(day, start, end, subject string) models.TimetableSlot {
	return models.TimetableSlot{Day: day, StartTime: start, EndTime: end, Subject: subject}
}

func TestTimetableCreateRequiresFields(t *testing.T) {
	r := newTimetableRegistry(t)

	testCases := []struct {
		name string
		slot models.TimetableSlot
	}{
		{"missing day", slot("", "09:00", "10:00", "DSA")},
		{"missing start", slot("Monday", "", "10:00", "DSA")},
		{"missing end", slot("Monday", "09:00", "", "DSA")},
		{"missing subject", slot("Monday", "09:00", "10:00", "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Create(tc.slot)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}

	assert.Empty(t, r.List())
}

func TestTimetableListSorted(t *testing.T) {
	r := newTimetableRegistry(t)

	for _, s := range []models.TimetableSlot{
		slot("Wednesday", "10:00", "11:00", "OS"),
		slot("Monday", "09:00", "10:00", "DSA"),
		slot("Funday", "08:00", "09:00", "Mystery"),
		slot("Monday", "08:00", "09:00", "Maths"),
		slot("Sunday", "09:00", "10:00", "Extra"),
	} {
		_, err := r.Create(s)
		require.NoError(t, err)
	}

	slots := r.List()
	require.Len(t, slots, 5)

	subjects := make([]string, 0, len(slots))
	for _, s := range slots {
		subjects = append(subjects, s.Subject)
	}

	// Monday before Wednesday before Sunday, start time breaks ties,
	// unknown days land at the end.
	assert.Equal(t, []string{"Maths", "DSA", "OS", "Extra", "Mystery"}, subjects)
}

func TestTimetableUpdate(t *testing.T) {
	r := newTimetableRegistry(t)

	created, err := r.Create(models.TimetableSlot{
		Day: "Monday", StartTime: "09:00", EndTime: "10:00",
		Subject: "DSA", TeacherName: "Bhaumik Sir", Room: "C-205",
	})
	require.NoError(t, err)

	room := "C-301"
	updated, err := r.Update(created.ID, models.TimetableSlotPatch{Room: &room})
	require.NoError(t, err)
	assert.Equal(t, "C-301", updated.Room)
	assert.Equal(t, "DSA", updated.Subject, "unspecified fields keep their prior value")
	assert.Equal(t, "Bhaumik Sir", updated.TeacherName)

	_, err = r.Update(999, models.TimetableSlotPatch{Room: &room})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimetableDelete(t *testing.T) {
	r := newTimetableRegistry(t)

	created, err := r.Create(slot("Monday", "09:00", "10:00", "DSA"))
	require.NoError(t, err)

	removed, err := r.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "DSA", removed.Subject)
	assert.Empty(t, r.List())

	_, err = r.Delete(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
