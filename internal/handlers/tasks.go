package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

type taskRequest struct {
	TaskName string `json:"task_name"`
	Category string `json:"category"`
	DueDate  string `json:"due_date"`
	Notes    string `json:"notes"`
}

// AddTask records a compliance requirement the parent must meet.
func AddTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := appStore.AddTask(r.Context(), userID, req.TaskName, req.Category, req.DueDate, req.Notes)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Task added",
		Data:    map[string]interface{}{"id": id},
	})
}

// ListTasks returns all compliance tasks ordered by due date.
func ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	tasks, err := appStore.ListTasks(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: tasks})
}

// CompleteTask marks a task completed and stamps the completion date.
// Completing an already-completed task is a no-op.
func CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	taskID, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := appStore.MarkTaskCompleted(r.Context(), userID, taskID); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Task completed"})
}

// TaskCategories returns the selectable task categories.
func TaskCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: models.TaskCategories})
}
