package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CategoryID  *uint      `json:"categoryId"`
	TagIDs      []uint     `json:"tagIds"`
}

// toInput validates the request body. Status and priority may be omitted on
// create (the service defaults them) but are required on update, where every
// field overwrites the stored value.
func (req *taskRequest) toInput(w http.ResponseWriter, requireEnums bool) (service.TaskInput, bool) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		errorJSON(w, http.StatusBadRequest, "title is required")
		return service.TaskInput{}, false
	}

	var status model.Status
	if req.Status != "" {
		parsed, ok := model.ParseStatus(req.Status)
		if !ok {
			errorJSON(w, http.StatusBadRequest, "unknown status: "+req.Status)
			return service.TaskInput{}, false
		}
		status = parsed
	} else if requireEnums {
		errorJSON(w, http.StatusBadRequest, "status is required")
		return service.TaskInput{}, false
	}

	var priority model.Priority
	if req.Priority != "" {
		parsed, ok := model.ParsePriority(req.Priority)
		if !ok {
			errorJSON(w, http.StatusBadRequest, "unknown priority: "+req.Priority)
			return service.TaskInput{}, false
		}
		priority = parsed
	} else if requireEnums {
		errorJSON(w, http.StatusBadRequest, "priority is required")
		return service.TaskInput{}, false
	}

	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	}, true
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	tasks, err := s.tasks.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid task id")
		return
	}
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	task, err := s.tasks.Get(r.Context(), id, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in, ok := req.toInput(w, false)
	if !ok {
		return
	}
	task, err := s.tasks.Create(r.Context(), userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid task id")
		return
	}
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in, ok := req.toInput(w, true)
	if !ok {
		return
	}
	task, err := s.tasks.Update(r.Context(), id, userID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid task id")
		return
	}
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	if err := s.tasks.Delete(r.Context(), id, userID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTasksByStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	raw := chi.URLParam(r, "status")
	status, ok := model.ParseStatus(raw)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "unknown status: "+raw)
		return
	}
	tasks, err := s.tasks.ListByStatus(r.Context(), userID, status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTasksByPriority(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	raw := chi.URLParam(r, "priority")
	priority, ok := model.ParsePriority(raw)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "unknown priority: "+raw)
		return
	}
	tasks, err := s.tasks.ListByPriority(r.Context(), userID, priority)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTasksByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	categoryID, ok := idParam(r, "categoryId")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}
	tasks, err := s.tasks.ListByCategory(r.Context(), userID, categoryID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTasksByTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	tagID, ok := idParam(r, "tagId")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid tag id")
		return
	}
	tasks, err := s.tasks.ListByTag(r.Context(), userID, tagID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTasksDueBetween(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	start, err := parseTimestamp(r.URL.Query().Get("start"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid start timestamp")
		return
	}
	end, err := parseTimestamp(r.URL.Query().Get("end"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid end timestamp")
		return
	}
	tasks, err := s.tasks.ListDueBetween(r.Context(), userID, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// parseTimestamp accepts RFC 3339 as well as the zone-less ISO date-time
// form (2006-01-02T15:04:05).
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}
