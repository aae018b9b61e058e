package models

// Status values stored in leaves.status. Only pending leaves may be
// edited, deleted or decided.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DateLayout is the wire and storage format for leave dates.
const DateLayout = "2006-01-02"

// Leave is a single leave request. Dates are stored as YYYY-MM-DD strings
// so that ORDER BY start_date sorts chronologically on every backend.
type Leave struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	User         User   `json:"-" gorm:"foreignKey:UserID"`
	Type         string `json:"type" gorm:"size:60;not null"`
	StartDate    string `json:"start_date" gorm:"size:10;not null"`
	EndDate      string `json:"end_date" gorm:"size:10;not null"`
	Reason       string `json:"reason" gorm:"type:text"`
	Status       string `json:"status" gorm:"size:20;not null;default:'pending'"`
	AdminComment string `json:"admin_comment" gorm:"type:text"`
}

// AdminLeave is one row of the admin review list: a leave joined with the
// owning user's name.
type AdminLeave struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment"`
	EmployeeName string `json:"employee_name"`
}
