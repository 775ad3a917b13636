package store

// Collection names persisted by the record store.
const (
	Students   = "students"
	Attendance = "attendance"
	Marks      = "marks"
	Timetable  = "timetable"
)

// RecordStore persists whole named collections. Load tolerates missing or
// corrupt storage by leaving out empty: callers never branch on storage
// trouble, it is logged inside the implementation. Save overwrites the full
// collection; a failed save is logged and the in-memory state the caller
// holds stays untouched.
type RecordStore interface {
	Load(collection string, out interface{}) error
	Save(collection string, v interface{}) error
	Close() error
}
