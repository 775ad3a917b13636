package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/skolbok/internal/app"
	"github.com/shrimpsizemoose/skolbok/internal/metrics"
)

type ProfileHandler struct {
	service *app.Service
}

func NewProfileHandler(service *app.Service) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// HandleProfile composes the role-scoped student profile: record, attendance
// summary and marks summary with the derived grade.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(time.Since(start).Seconds())
	}()

	role, requesterID, err := h.service.Identify(r)
	if err != nil {
		logger.Debug.Printf("Failed to identify profile caller: %v", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	selectedID, _ := strconv.ParseInt(r.URL.Query().Get("student_id"), 10, 64)

	view, err := h.service.Reports.ViewFor(role, requesterID, selectedID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if view.Attendance.Total > 0 {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(view.Attendance.Percentage, "%"), 64); err == nil {
			metrics.AttendancePercentage.Observe(pct)
		}
	}

	writeJSON(w, http.StatusOK, view)
}
