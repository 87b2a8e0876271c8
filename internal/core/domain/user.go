package domain

// UserRole gates which operations the HTTP layer will forward for a caller.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

// User is an authenticated caller identity. PasswordHash is a bcrypt hash and
// is never serialized into responses.
type User struct {
	RecordMeta
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash"`
	Role         UserRole `json:"role"`
	BranchID     string   `json:"branchId,omitempty"`
	IsActive     bool     `json:"isActive"`
}
