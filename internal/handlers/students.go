package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/skolbok/internal/app"
	"github.com/shrimpsizemoose/skolbok/internal/metrics"
	"github.com/shrimpsizemoose/skolbok/internal/models"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

type StudentHandler struct {
	service *app.Service
}

func NewStudentHandler(service *app.Service) *StudentHandler {
	return &StudentHandler{
		service: service,
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *StudentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	students := h.service.Students.List()
	if students == nil {
		students = []models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"201",
		).Observe(time.Since(start).Seconds())
	}()

	var student models.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Students.Create(student)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("students", "create").Inc()
	writeJSON(w, http.StatusCreated, created)
}

func (h *StudentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	var patch models.StudentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Students.Update(id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("students", "update").Inc()
	writeJSON(w, http.StatusOK, updated)
}

func (h *StudentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	removed, err := h.service.Students.Delete(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("students", "delete").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Student deleted.",
		"removed": removed,
	})
}

// HandlePhotoUpload stores the uploaded photo under the uploads dir and points
// the student's photo reference at it. The stored filename combines the
// sanitized original name with a random suffix so re-uploads never collide.
func (h *StudentHandler) HandlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded.")
		return
	}

	upload, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer upload.Close()

	original := filepath.Base(header.Filename)
	ext := filepath.Ext(original)
	base := whitespaceRegex.ReplaceAllString(strings.TrimSuffix(original, ext), "_")
	name := fmt.Sprintf("%s_%s%s", base, uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(h.service.Config.Server.UploadsDir, name))
	if err != nil {
		logger.Error.Printf("Failed to create upload file: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store photo")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, upload); err != nil {
		logger.Error.Printf("Failed to write upload file: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store photo")
		return
	}

	updated, err := h.service.Students.SetPhoto(id, "/uploads/"+name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordMutationsTotal.WithLabelValues("students", "photo").Inc()
	writeJSON(w, http.StatusOK, updated)
}

// HandleExportCSV dumps the student table for the admin's offline use.
func (h *StudentHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="students.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Roll No", "Name", "Department", "Semester", "CGPA", "Phone", "Father Name", "Mother Name", "DOB"})
	for _, s := range h.service.Students.List() {
		cw.Write([]string{
			s.RollNo,
			s.Name,
			s.Department,
			s.Semester,
			s.CGPA,
			s.Phone,
			s.FatherName,
			s.MotherName,
			s.DOB,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		logger.Error.Printf("Failed to write students CSV: %v", err)
	}
}
