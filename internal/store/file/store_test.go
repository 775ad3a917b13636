package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/skolbok/internal/models"
)

func setupTestStore(t *testing.T) *FileStore {
	t.Helper()

	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err, "Failed to create store")
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	students := []models.Student{
		{ID: 1, RollNo: "R1", Name: "Alice", Department: "CSE"},
		{ID: 2, RollNo: "R2", Name: "Bob", DOB: "2001-05-12"},
	}

	require.NoError(t, s.Save("students", students))

	var got []models.Student
	require.NoError(t, s.Load("students", &got))
	assert.Equal(t, students, got)
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	s := setupTestStore(t)

	var got []models.Student
	require.NoError(t, s.Load("students", &got))
	assert.Empty(t, got)
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	s := setupTestStore(t)

	err := os.WriteFile(s.path("students"), []byte("{{{not json"), 0o644)
	require.NoError(t, err)

	var got []models.Student
	require.NoError(t, s.Load("students", &got))
	assert.Empty(t, got)
}

func TestLoadEmptyFileYieldsEmpty(t *testing.T) {
	s := setupTestStore(t)

	err := os.WriteFile(s.path("students"), nil, 0o644)
	require.NoError(t, err)

	var got []models.Student
	require.NoError(t, s.Load("students", &got))
	assert.Empty(t, got)
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.Save("students", []models.Student{
		{ID: 1, RollNo: "R1", Name: "Alice"},
		{ID: 2, RollNo: "R2", Name: "Bob"},
	}))
	require.NoError(t, s.Save("students", []models.Student{
		{ID: 2, RollNo: "R2", Name: "Bob"},
	}))

	var got []models.Student
	require.NoError(t, s.Load("students", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "R2", got[0].RollNo)
}

func TestCollectionsAreIndependent(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.Save("students", []models.Student{{ID: 1, RollNo: "R1", Name: "Alice"}}))
	require.NoError(t, s.Save("marks", []models.MarkRecord{{ID: 1, StudentID: 1, Subject: "Maths", Exam: "Mid-1", Marks: "90"}}))

	var students []models.Student
	var marks []models.MarkRecord
	require.NoError(t, s.Load("students", &students))
	require.NoError(t, s.Load("marks", &marks))
	assert.Len(t, students, 1)
	assert.Len(t, marks, 1)

	assert.FileExists(t, filepath.Join(s.dir, "students.json"))
	assert.FileExists(t, filepath.Join(s.dir, "marks.json"))
}
