package domain

// UserRole controls access to administrative operations.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User represents an application user. Users are never deleted; the IsActive
// flag is toggled instead.
type User struct {
	UserID   string   `json:"userID"` // Primary key (UUID)
	Name     string   `json:"name"`
	Email    string   `json:"email"` // Unique login identifier
	Role     UserRole `json:"role"`
	IsActive bool     `json:"isActive"`
	AuditFields
}
