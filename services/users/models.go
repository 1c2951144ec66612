package users

import (
	"database/sql"
	"strings"
	"time"
)

// User is the durable record for one Telegram user. Identity fields are
// written once at first contact; the test columns are filled together
// when the questionnaire completes.
type User struct {
	ID              int64          `db:"id"`
	Username        string         `db:"username"`
	FirstName       string         `db:"first_name"`
	LastName        string         `db:"last_name"`
	RegisteredAt    time.Time      `db:"registered_at"`
	TestResult      sql.NullString `db:"test_result"`
	TestCompletedAt sql.NullTime   `db:"test_completed_at"`
	Answers         sql.NullString `db:"answers"`
}

// FullName joins the name parts, falling back to a placeholder when
// both are empty.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "Без имени"
	}
	return name
}

// Handle returns the @-prefixed username or a placeholder.
func (u User) Handle() string {
	if u.Username == "" {
		return "—"
	}
	return "@" + u.Username
}
