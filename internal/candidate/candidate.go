package candidate

import (
	"time"
)

// Status is the recruiting pipeline stage.
type Status string

const (
	StatusUploaded           Status = "Uploaded"
	StatusShortlisted        Status = "Shortlisted"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewDone      Status = "Interview Done"
	StatusHired              Status = "Hired"
	StatusRejected           Status = "Rejected"
	StatusOnHold             Status = "On Hold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUploaded, StatusShortlisted, StatusInterviewScheduled,
		StatusInterviewDone, StatusHired, StatusRejected, StatusOnHold:
		return true
	}
	return false
}

// Candidate is one tracked applicant. CVPath is the stored file name under
// the uploads directory, never a client-controlled path.
type Candidate struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"column:name;not null"`
	Email      string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Phone      string    `json:"phone" gorm:"column:phone"`
	Role       string    `json:"role" gorm:"column:role"`
	Department string    `json:"department" gorm:"column:department"`
	Location   string    `json:"location" gorm:"column:location"`
	Source     string    `json:"source" gorm:"column:source"`
	Status     Status    `json:"status" gorm:"column:status;default:Uploaded"`
	CVPath     string    `json:"cv_path,omitempty" gorm:"column:cv_path"`
	CVFileName string    `json:"cv_file_name,omitempty" gorm:"column:cv_file_name"`
	UploadedBy int64     `json:"uploaded_by" gorm:"column:uploaded_by"`
	Notes      string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// ListFilter narrows a candidate listing. Search matches name, email and
// role as a case-insensitive substring.
type ListFilter struct {
	Department   string
	Location     string
	Status       *Status
	Search       string
	CreatedAfter *time.Time
	Page         int
	PageSize     int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

type Page struct {
	Candidates []Candidate `json:"candidates"`
	Pagination Pagination  `json:"pagination"`
}

func NewPage(candidates []Candidate, total int64, page, pageSize int) Page {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	if candidates == nil {
		candidates = []Candidate{}
	}
	return Page{
		Candidates: candidates,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: pageSize,
		},
	}
}
