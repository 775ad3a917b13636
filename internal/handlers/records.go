package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/skolbok/internal/app"
	"github.com/shrimpsizemoose/skolbok/internal/metrics"
	"github.com/shrimpsizemoose/skolbok/internal/models"
)

// LedgerHandler serves the two append-only collections: attendance and marks.
type LedgerHandler struct {
	service *app.Service
}

func NewLedgerHandler(service *app.Service) *LedgerHandler {
	return &LedgerHandler{
		service: service,
	}
}

func (h *LedgerHandler) HandleAttendanceList(w http.ResponseWriter, r *http.Request) {
	records := h.service.Attendance.List()
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *LedgerHandler) HandleAttendanceAppend(w http.ResponseWriter, r *http.Request) {
	var rec models.AttendanceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Attendance.Append(rec)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("attendance", "append").Inc()
	writeJSON(w, http.StatusCreated, created)
}

func (h *LedgerHandler) HandleMarksList(w http.ResponseWriter, r *http.Request) {
	records := h.service.Marks.List()
	if records == nil {
		records = []models.MarkRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *LedgerHandler) HandleMarksAppend(w http.ResponseWriter, r *http.Request) {
	var rec models.MarkRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Marks.Append(rec)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("marks", "append").Inc()
	writeJSON(w, http.StatusCreated, created)
}
