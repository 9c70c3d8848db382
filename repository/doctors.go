package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hospice/hospital-locator-api/doctors"
	"github.com/jackc/pgx/v5"
)

var doctorColumns = []string{
	"id", "name", "qualification", "experience", "hospital", "phone",
	"availability", "rating", "created_at", "updated_at",
}

func insertDoctorQuery(d *doctors.Doctor) sq.InsertBuilder {
	return psql.Insert("doctors").
		Columns(doctorColumns...).
		Values(d.ID, d.Name, d.Qualification, d.Experience, d.Hospital, d.Phone,
			string(d.Availability), d.Rating, d.CreatedAt, d.UpdatedAt)
}

func listDoctorsQuery() sq.SelectBuilder {
	return psql.Select(doctorColumns...).From("doctors").OrderBy("name ASC")
}

func doctorQuery(where sq.Eq) sq.SelectBuilder {
	return psql.Select(doctorColumns...).From("doctors").Where(where).Limit(1)
}

func scanDoctor(row pgx.Row) (*doctors.Doctor, error) {
	var d doctors.Doctor
	var availability string
	err := row.Scan(&d.ID, &d.Name, &d.Qualification, &d.Experience, &d.Hospital, &d.Phone,
		&availability, &d.Rating, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	d.Availability = doctors.Availability(availability)
	return &d, nil
}

func (repo *Repository) CreateDoctor(d *doctors.Doctor) error {
	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := repo.exec(insertDoctorQuery(d)); err != nil {
		return fmt.Errorf("could not create doctor: %w", err)
	}

	return nil
}

func (repo *Repository) GetDoctors() ([]*doctors.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := repo.query(ctx, listDoctorsQuery())
	if err != nil {
		return nil, fmt.Errorf("could not query doctors: %w", err)
	}
	defer rows.Close()

	results := []*doctors.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan doctor: %w", err)
		}
		results = append(results, d)
	}

	return results, rows.Err()
}

func (repo *Repository) GetDoctor(id string) (*doctors.Doctor, error) {
	return repo.findDoctor(sq.Eq{"id": id})
}

// GetDoctorByPhone matches the stored phone exactly, as the gateway reports it.
func (repo *Repository) GetDoctorByPhone(phone string) (*doctors.Doctor, error) {
	return repo.findDoctor(sq.Eq{"phone": phone})
}

func (repo *Repository) findDoctor(where sq.Eq) (*doctors.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row, err := repo.queryRow(ctx, doctorQuery(where))
	if err != nil {
		return nil, err
	}

	d, err := scanDoctor(row)
	if err != nil {
		return nil, fmt.Errorf("could not query doctor: %w", err)
	}

	return d, nil
}
