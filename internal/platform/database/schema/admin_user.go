package schema

// AdminUserTable represents the 'admin_users' table
type AdminUserTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      string
	CreatedAt    string
}

// AdminUser is the schema definition for admin_users
var AdminUser = AdminUserTable{
	Table:        "admin_users",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	IsAdmin:      "is_admin",
	CreatedAt:    "created_at",
}

// Columns returns all column names in scan order
func (t AdminUserTable) Columns() []string {
	return []string{t.ID, t.Email, t.PasswordHash, t.IsAdmin, t.CreatedAt}
}
