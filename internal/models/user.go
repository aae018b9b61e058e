package models

// Role values stored in users.role.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User represents an account that can log in and own leave requests.
// The password column always holds a bcrypt hash, never plaintext.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Email    string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:100;not null"`
	Role     string `json:"role" gorm:"size:20;not null;default:'employee'"`
}

// PublicUser is the view of a user returned to clients. It never carries
// the password hash.
type PublicUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}
