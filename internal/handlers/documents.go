package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// maxUploadSize caps document uploads at 10MB.
const maxUploadSize = 10 << 20

// UploadDocument stores an evidence file. An optional AI summary is attempted
// but the upload succeeds regardless of whether the model answered.
func UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "File too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	category := r.FormValue("category")
	fileType := header.Header.Get("Content-Type")

	// AI analysis is best effort. A model failure must never lose the upload.
	analysis := ""
	if appAssistant != nil {
		prompt := fmt.Sprintf("Analyze this %s document. Extract key information, identify any requirements, deadlines, or concerns mentioned. Summarize in bullet points.", category)
		analysis = appAssistant.Reply(r.Context(), nil, prompt)
	}

	docID, err := appStore.AddDocument(r.Context(), userID, header.Filename, fileType, category, analysis, data)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("✅ Document %d uploaded for user %d (%d bytes)", docID, userID, len(data))
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Document uploaded",
		Data:    map[string]interface{}{"id": docID, "ai_analysis": analysis},
	})
}

// ListDocuments returns document metadata, newest first. Payloads are not
// included, use the download endpoint.
func ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	docs, err := appStore.ListDocuments(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: docs})
}

// DownloadDocument streams the stored file back as an attachment.
func DownloadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	docID, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid document id")
		return
	}

	filename, fileType, data, err := appStore.DocumentData(r.Context(), userID, docID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if fileType == "" {
		fileType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", fileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// DocumentCategories returns the selectable document categories.
func DocumentCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: models.DocumentCategories})
}
