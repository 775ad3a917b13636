package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/skolbok/internal/app"
	"github.com/shrimpsizemoose/skolbok/internal/metrics"
	"github.com/shrimpsizemoose/skolbok/internal/models"
)

type TimetableHandler struct {
	service *app.Service
}

func NewTimetableHandler(service *app.Service) *TimetableHandler {
	return &TimetableHandler{
		service: service,
	}
}

func (h *TimetableHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	slots := h.service.Timetable.List()
	if slots == nil {
		slots = []models.TimetableSlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *TimetableHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var slot models.TimetableSlot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Timetable.Create(slot)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("timetable", "create").Inc()
	writeJSON(w, http.StatusCreated, created)
}

func (h *TimetableHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid timetable id")
		return
	}

	var patch models.TimetableSlotPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Timetable.Update(id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("timetable", "update").Inc()
	writeJSON(w, http.StatusOK, updated)
}

func (h *TimetableHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid timetable id")
		return
	}

	removed, err := h.service.Timetable.Delete(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("timetable", "delete").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Timetable entry deleted.",
		"removed": removed,
	})
}
