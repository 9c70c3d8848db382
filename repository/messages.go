package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hospice/hospital-locator-api/messages"
)

var messageColumns = []string{"id", "doctor_id", "body", "sender", "read", "created_at", "updated_at"}

func insertMessageQuery(m *messages.Message) sq.InsertBuilder {
	return psql.Insert("messages").
		Columns(messageColumns...).
		Values(m.ID, m.DoctorID, m.Body, string(m.Sender), m.Read, m.CreatedAt, m.UpdatedAt)
}

func messagesByDoctorQuery(doctorID string) sq.SelectBuilder {
	return psql.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"doctor_id": doctorID}).
		OrderBy("created_at ASC", "id ASC")
}

// CreateMessage stores m. An id is generated unless one is already set, so a
// redelivered inbound event is stored once.
func (repo *Repository) CreateMessage(m *messages.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.UpdatedAt = m.CreatedAt

	if _, err := repo.exec(insertMessageQuery(m)); err != nil {
		return fmt.Errorf("could not create message: %w", err)
	}

	return nil
}

func (repo *Repository) GetMessages(doctorID string) ([]*messages.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := repo.query(ctx, messagesByDoctorQuery(doctorID))
	if err != nil {
		return nil, fmt.Errorf("could not query messages: %w", err)
	}
	defer rows.Close()

	results := []*messages.Message{}
	for rows.Next() {
		var m messages.Message
		var sender string
		if err := rows.Scan(&m.ID, &m.DoctorID, &m.Body, &sender, &m.Read, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan message: %w", err)
		}
		m.Sender = messages.Sender(sender)
		results = append(results, &m)
	}

	return results, rows.Err()
}
