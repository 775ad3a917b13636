package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/skolbok/internal/app"
)

// NewRouter wires every API route onto a fresh mux. Static files, uploads
// and metrics stay with the caller.
func NewRouter(service *app.Service) *http.ServeMux {
	studentHandler := NewStudentHandler(service)
	ledgerHandler := NewLedgerHandler(service)
	timetableHandler := NewTimetableHandler(service)
	profileHandler := NewProfileHandler(service)
	loginHandler := NewLoginHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/students", studentHandler.HandleList)
	mux.HandleFunc("POST /api/students", studentHandler.HandleCreate)
	mux.HandleFunc("PUT /api/students/{id}", studentHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/students/{id}", studentHandler.HandleDelete)
	mux.HandleFunc("POST /api/students/{id}/photo", studentHandler.HandlePhotoUpload)
	mux.HandleFunc("GET /api/students/export.csv", studentHandler.HandleExportCSV)

	mux.HandleFunc("GET /api/attendance", ledgerHandler.HandleAttendanceList)
	mux.HandleFunc("POST /api/attendance", ledgerHandler.HandleAttendanceAppend)
	mux.HandleFunc("GET /api/marks", ledgerHandler.HandleMarksList)
	mux.HandleFunc("POST /api/marks", ledgerHandler.HandleMarksAppend)

	mux.HandleFunc("GET /api/timetable", timetableHandler.HandleList)
	mux.HandleFunc("POST /api/timetable", timetableHandler.HandleCreate)
	mux.HandleFunc("PUT /api/timetable/{id}", timetableHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/timetable/{id}", timetableHandler.HandleDelete)

	mux.HandleFunc("GET /api/profile", profileHandler.HandleProfile)
	mux.HandleFunc("POST /api/login", loginHandler.HandleLogin)

	return mux
}
