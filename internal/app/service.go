package app

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/shrimpsizemoose/skolbok/internal/registry"
	"github.com/shrimpsizemoose/skolbok/internal/report"
	"github.com/shrimpsizemoose/skolbok/internal/store"
)

type Service struct {
	Config     *Config
	Store      store.RecordStore
	Students   *registry.StudentRegistry
	Attendance *registry.AttendanceLedger
	Marks      *registry.MarksLedger
	Timetable  *registry.TimetableRegistry
	Reports    *report.Aggregator
	Sessions   *Sessions
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	recordStore, err := NewStore(config.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	sessions, err := NewSessions(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init sessions: %w", err)
	}

	if err := os.MkdirAll(config.Server.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	students := registry.NewStudentRegistry(recordStore)
	attendance := registry.NewAttendanceLedger(recordStore)
	marks := registry.NewMarksLedger(recordStore)

	return &Service{
		Config:     config,
		Store:      recordStore,
		Students:   students,
		Attendance: attendance,
		Marks:      marks,
		Timetable:  registry.NewTimetableRegistry(recordStore),
		Reports:    report.NewAggregator(students, attendance, marks),
		Sessions:   sessions,
	}, nil
}

// Login resolves credentials to a role and, for students, the bound student
// id. Staff accounts come from config; a student signs in with their roll
// number as both username and password.
func (s *Service) Login(username, password string) (string, int64, error) {
	for _, u := range s.Config.Users {
		if u.Username == username && u.Password == password {
			return u.Role, 0, nil
		}
	}

	if username != "" && username == password {
		for _, student := range s.Students.List() {
			if student.RollNo == username {
				return report.RoleStudent, student.ID, nil
			}
		}
	}

	return "", 0, fmt.Errorf("invalid credentials")
}

// Identify derives the caller's role and student binding. With auth enabled
// the session token is the only source of truth; with it disabled the legacy
// client-supplied role and student_id query values are trusted as-is.
func (s *Service) Identify(r *http.Request) (string, int64, error) {
	if !s.Sessions.Enabled() {
		role := r.URL.Query().Get("role")
		studentID, _ := strconv.ParseInt(r.URL.Query().Get("student_id"), 10, 64)
		return role, studentID, nil
	}

	token := r.Header.Get(s.Sessions.TokenHeader())
	if token == "" {
		return "", 0, fmt.Errorf("missing session token")
	}

	info, err := s.Sessions.Lookup(r.Context(), token)
	if err != nil {
		return "", 0, err
	}
	return info.Role, info.StudentID, nil
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("sessions: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
