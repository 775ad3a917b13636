package registry

import (
	"sync"
	"time"

	"github.com/shrimpsizemoose/skolbok/internal/models"
	"github.com/shrimpsizemoose/skolbok/internal/store"
)

// The ledgers are append-only: no update, no delete. StudentID is a soft
// reference, an entry whose student was deleted later stays in the ledger and
// resolves as unknown at read time.

type AttendanceLedger struct {
	mu     sync.Mutex
	store  store.RecordStore
	nextID int64
}

func NewAttendanceLedger(rs store.RecordStore) *AttendanceLedger {
	l := &AttendanceLedger{store: rs, nextID: 1}

	var records []models.AttendanceRecord
	rs.Load(store.Attendance, &records)
	for _, rec := range records {
		if rec.ID >= l.nextID {
			l.nextID = rec.ID + 1
		}
	}

	return l
}

func (l *AttendanceLedger) List() []models.AttendanceRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var records []models.AttendanceRecord
	l.store.Load(store.Attendance, &records)
	return records
}

// Append records one day's status for a student. Date defaults to today when
// the caller leaves it empty.
func (l *AttendanceLedger) Append(rec models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, missingField(err)
	}
	if rec.Date == "" {
		rec.Date = time.Now().Format("2006-01-02")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var records []models.AttendanceRecord
	l.store.Load(store.Attendance, &records)

	rec.ID = l.nextID
	l.nextID++
	records = append(records, rec)
	l.store.Save(store.Attendance, records)

	return &rec, nil
}

type MarksLedger struct {
	mu     sync.Mutex
	store  store.RecordStore
	nextID int64
}

func NewMarksLedger(rs store.RecordStore) *MarksLedger {
	l := &MarksLedger{store: rs, nextID: 1}

	var records []models.MarkRecord
	rs.Load(store.Marks, &records)
	for _, rec := range records {
		if rec.ID >= l.nextID {
			l.nextID = rec.ID + 1
		}
	}

	return l
}

func (l *MarksLedger) List() []models.MarkRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var records []models.MarkRecord
	l.store.Load(store.Marks, &records)
	return records
}

func (l *MarksLedger) Append(rec models.MarkRecord) (*models.MarkRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, missingField(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var records []models.MarkRecord
	l.store.Load(store.Marks, &records)

	rec.ID = l.nextID
	l.nextID++
	records = append(records, rec)
	l.store.Save(store.Marks, records)

	return &rec, nil
}
