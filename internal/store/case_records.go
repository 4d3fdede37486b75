package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// caseColumns is the closed allow-list of updatable case_details columns.
// Update clauses are only ever built from this set, never from caller input.
var caseColumns = map[string]bool{
	"children_names":     true,
	"children_ages":      true,
	"case_number":        true,
	"caseworker_name":    true,
	"caseworker_contact": true,
	"court_date":         true,
	"separation_date":    true,
	"case_type":          true,
}

// buildCaseUpdate turns a partial field map into a SET clause with $n
// placeholders (sorted by column for deterministic SQL) and the matching
// argument list. Unknown field names are rejected with ErrValidation.
func buildCaseUpdate(fields map[string]string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !caseColumns[col] {
			return "", nil, fmt.Errorf("%w: unknown field %q", ErrValidation, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}

	return strings.Join(assignments, ", "), args, nil
}

// CaseRecord returns the user's case record. A user whose record is missing
// (schema predating the transactional sign-up) gets a zero-valued record.
func (s *Store) CaseRecord(ctx context.Context, userID int64) (models.CaseRecord, error) {
	var rec models.CaseRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, children_names, children_ages, case_number,
			caseworker_name, caseworker_contact, court_date, separation_date, case_type
		FROM case_details WHERE user_id = $1
	`, userID).Scan(&rec.ID, &rec.UserID, &rec.ChildrenNames, &rec.ChildrenAges,
		&rec.CaseNumber, &rec.CaseworkerName, &rec.CaseworkerContact,
		&rec.CourtDate, &rec.SeparationDate, &rec.CaseType)
	if err == sql.ErrNoRows {
		return models.CaseRecord{UserID: userID}, nil
	}
	return rec, err
}

// UpdateCaseRecord overwrites exactly the supplied columns of the user's
// case record, leaving everything else untouched.
func (s *Store) UpdateCaseRecord(ctx context.Context, userID int64, fields map[string]string) error {
	setClause, args, err := buildCaseUpdate(fields)
	if err != nil {
		return err
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE case_details SET %s WHERE user_id = $%d", setClause, len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
