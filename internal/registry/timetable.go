package registry

import (
	"sort"
	"sync"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/store"
)

var dayOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// Days the weekly grid doesn't know about sort after everything else.
const unknownDayOrder = 99

type TimetableRegistry struct {
	mu     sync.Mutex
	store  store.RecordStore
	nextID int64
}

func NewTimetableRegistry(rs store.RecordStore) *TimetableRegistry {
	r := &TimetableRegistry{store: rs, nextID: 1}

	var slots []models.TimetableSlot
	rs.Load(store.Timetable, &slots)
	for _, slot := range slots {
		if slot.ID >= r.nextID {
			r.nextID = slot.ID + 1
		}
	}

	return r
}

func (r *TimetableRegistry) load() []models.TimetableSlot {
	var slots []models.TimetableSlot
	r.store.Load(store.Timetable, &slots)
	return slots
}

// List returns the weekly grid sorted by day then start time, ready for
// presentation.
func (r *TimetableRegistry) List() []models.TimetableSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.load()
	sort.SliceStable(slots, func(i, j int) bool {
		di, ok := dayOrder[slots[i].Day]
		if !ok {
			di = unknownDayOrder
		}
		dj, ok := dayOrder[slots[j].Day]
		if !ok {
			dj = unknownDayOrder
		}
		if di != dj {
			return di < dj
		}
		return slots[i].StartTime < slots[j].StartTime
	})

	return slots
}

func (r *TimetableRegistry) Create(slot models.TimetableSlot) (*models.TimetableSlot, error) {
	if err := slot.Validate(); err != nil {
		return nil, missingField(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.load()
	slot.ID = r.nextID
	r.nextID++
	slots = append(slots, slot)
	r.store.Save(store.Timetable, slots)

	return &slot, nil
}

func (r *TimetableRegistry) Update(id int64, patch models.TimetableSlotPatch) (*models.TimetableSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.load()
	idx := -1
	for i, slot := range slots {
		if slot.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&slots[idx].Day, patch.Day)
	apply(&slots[idx].StartTime, patch.StartTime)
	apply(&slots[idx].EndTime, patch.EndTime)
	apply(&slots[idx].Subject, patch.Subject)
	apply(&slots[idx].TeacherName, patch.TeacherName)
	apply(&slots[idx].Room, patch.Room)
	apply(&slots[idx].Section, patch.Section)

	r.store.Save(store.Timetable, slots)

	updated := slots[idx]
	return &updated, nil
}

func (r *TimetableRegistry) Delete(id int64) (*models.TimetableSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.load()
	for i, slot := range slots {
		if slot.ID == id {
			removed := slot
			slots = append(slots[:i], slots[i+1:]...)
			r.store.Save(store.Timetable, slots)
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}
