package registry

import (
	"sync"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/store"
)

// StudentRegistry owns the students collection: id assignment, roll-number
// uniqueness and the photo reference. All access goes through one mutex so
// concurrent requests see whole read-modify-write cycles, never interleaved
// ones.
type StudentRegistry struct {
	mu     sync.Mutex
	store  store.RecordStore
	nextID int64
}

func NewStudentRegistry(rs store.RecordStore) *StudentRegistry {
	r := &StudentRegistry{store: rs, nextID: 1}

	var students []models.Student
	rs.Load(store.Students, &students)
	for _, s := range students {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}

	return r
}

func (r *StudentRegistry) load() []models.Student {
	var students []models.Student
	r.store.Load(store.Students, &students)
	return students
}

func (r *StudentRegistry) newID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *StudentRegistry) List() []models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *StudentRegistry) Get(id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.load() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// Create registers a student. RollNo and Name are required, RollNo must not
// collide with any existing student, and the photo reference always starts
// empty regardless of what the caller sent.
func (r *StudentRegistry) Create(s models.Student) (*models.Student, error) {
	if err := s.Validate(); err != nil {
		return nil, missingField(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	students := r.load()
	for _, other := range students {
		if other.RollNo == s.RollNo {
			return nil, ErrDuplicateRollNo
		}
	}

	s.ID = r.newID()
	s.Photo = ""
	students = append(students, s)
	r.store.Save(store.Students, students)

	return &s, nil
}

// Update merges the patch into the existing record: nil fields keep their
// prior value. A roll-number change is re-validated against every other
// student; keeping the current roll number is always allowed.
func (r *StudentRegistry) Update(id int64, patch models.StudentPatch) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	students := r.load()
	idx := -1
	for i, s := range students {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	if patch.RollNo != nil && *patch.RollNo != "" && *patch.RollNo != students[idx].RollNo {
		for _, other := range students {
			if other.ID != id && other.RollNo == *patch.RollNo {
				return nil, ErrDuplicateRollNo
			}
		}
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&students[idx].RollNo, patch.RollNo)
	apply(&students[idx].Name, patch.Name)
	apply(&students[idx].Department, patch.Department)
	apply(&students[idx].Semester, patch.Semester)
	apply(&students[idx].CGPA, patch.CGPA)
	apply(&students[idx].Phone, patch.Phone)
	apply(&students[idx].FatherName, patch.FatherName)
	apply(&students[idx].MotherName, patch.MotherName)
	apply(&students[idx].DOB, patch.DOB)

	r.store.Save(store.Students, students)

	updated := students[idx]
	return &updated, nil
}

func (r *StudentRegistry) Delete(id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	students := r.load()
	for i, s := range students {
		if s.ID == id {
			removed := s
			students = append(students[:i], students[i+1:]...)
			r.store.Save(store.Students, students)
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}

// SetPhoto points the student's photo at a storage-relative reference. Photo
// changes deliberately bypass Update so a stale profile form can never clear
// an uploaded photo.
func (r *StudentRegistry) SetPhoto(id int64, photoRef string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	students := r.load()
	for i := range students {
		if students[i].ID == id {
			students[i].Photo = photoRef
			r.store.Save(store.Students, students)
			updated := students[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}
