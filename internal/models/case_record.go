package models

// CaseRecord is the single per-user record of case metadata. All fields are
// free text entered by the parent; dates stay as entered (YYYY-MM-DD).
type CaseRecord struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	ChildrenNames     string `json:"children_names"`
	ChildrenAges      string `json:"children_ages"`
	CaseNumber        string `json:"case_number"`
	CaseworkerName    string `json:"caseworker_name"`
	CaseworkerContact string `json:"caseworker_contact"`
	CourtDate         string `json:"court_date"`
	SeparationDate    string `json:"separation_date"`
	CaseType          string `json:"case_type"`
}
