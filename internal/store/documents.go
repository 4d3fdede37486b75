package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AddDocument stores an uploaded document with its opaque binary payload and
// any AI analysis text. Documents are immutable once inserted.
func (s *Store) AddDocument(ctx context.Context, userID int64, filename, fileType, category, aiAnalysis string, fileData []byte) (int64, error) {
	if strings.TrimSpace(filename) == "" {
		return 0, fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if !models.ValidDocumentCategory(category) {
		return 0, fmt.Errorf("%w: unknown document category %q", ErrValidation, category)
	}

	var docID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO documents (user_id, filename, file_type, category, ai_analysis, file_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, userID, filename, fileType, category, aiAnalysis, fileData).Scan(&docID)
	if err != nil {
		return 0, err
	}
	return docID, nil
}

// ListDocuments returns the user's documents newest-upload-first. The binary
// payload is not included in listings.
func (s *Store) ListDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, filename, file_type, category, upload_date, ai_analysis
		FROM documents WHERE user_id = $1
		ORDER BY upload_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Filename, &d.FileType, &d.Category, &d.UploadDate, &d.AIAnalysis); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DocumentData returns the raw payload of one of the user's documents for
// export, together with its filename and declared media type.
func (s *Store) DocumentData(ctx context.Context, userID, docID int64) (filename, fileType string, data []byte, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT filename, file_type, file_data
		FROM documents WHERE id = $1 AND user_id = $2
	`, docID, userID).Scan(&filename, &fileType, &data)
	if err == sql.ErrNoRows {
		return "", "", nil, ErrNotFound
	}
	return filename, fileType, data, err
}
