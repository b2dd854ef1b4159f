package db

import (
	"github.com/twinj/uuid"

	"github.com/zarkopopovski/study-bot/models"
)

// SaveMessage appends one conversation turn for the user. Messages are
// append-only: there is no update path anywhere in the service.
func (dbManager *DBManager) SaveMessage(userID string, role string, content string) error {
	queryStr := "INSERT INTO messages(id, user_id, role, content, timestamp) VALUES($1, $2, $3, $4, datetime('now'))"

	_, err := dbManager.DB.Exec(queryStr, uuid.NewV4().String(), userID, role, content)

	return err
}

// ListMessagesForUser returns every turn stored for the user, newest first.
// A user with no history yields an empty slice, not an error.
func (dbManager *DBManager) ListMessagesForUser(userID string) ([]models.Message, error) {
	queryStr := "SELECT * FROM messages WHERE user_id=$1 ORDER BY timestamp DESC, rowid DESC"

	messages := make([]models.Message, 0)

	err := dbManager.DB.Select(&messages, queryStr, userID)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// RecentMessagesForUser returns at most limit turns, newest first.
func (dbManager *DBManager) RecentMessagesForUser(userID string, limit int) ([]models.Message, error) {
	queryStr := "SELECT * FROM messages WHERE user_id=$1 ORDER BY timestamp DESC, rowid DESC LIMIT $2"

	messages := make([]models.Message, 0)

	err := dbManager.DB.Select(&messages, queryStr, userID, limit)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// DeleteMessagesForUser removes the user's whole history and reports how
// many rows went away. Zero is a valid outcome.
func (dbManager *DBManager) DeleteMessagesForUser(userID string) (int64, error) {
	queryStr := "DELETE FROM messages WHERE user_id=$1"

	result, err := dbManager.DB.Exec(queryStr, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// CountMessagesByRole groups the user's stored turns by role. Roles with no
// rows count as zero.
func (dbManager *DBManager) CountMessagesByRole(userID string) (models.RoleCounts, error) {
	queryStr := "SELECT role, COUNT(*) AS total FROM messages WHERE user_id=$1 GROUP BY role"

	rows := make([]struct {
		Role  string `db:"role"`
		Total int64  `db:"total"`
	}, 0)

	counts := models.RoleCounts{}

	err := dbManager.DB.Select(&rows, queryStr, userID)
	if err != nil {
		return counts, err
	}

	for _, row := range rows {
		switch row.Role {
		case models.RoleUser:
			counts.User = row.Total
		case models.RoleAssistant:
			counts.Assistant = row.Total
		}
	}

	return counts, nil
}
