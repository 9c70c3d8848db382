package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hospice/hospital-locator-api/hospitals"
	"github.com/jackc/pgx/v5"
)

var hospitalColumns = []string{
	"id", "name", "address", "phone", "latitude", "longitude",
	"available_beds", "has_emergency", "is_open", "created_at", "updated_at",
}

func insertHospitalQuery(h *hospitals.Hospital) sq.InsertBuilder {
	return psql.Insert("hospitals").
		Columns(hospitalColumns...).
		Values(h.ID, h.Name, h.Address, h.Phone, h.Latitude, h.Longitude,
			h.AvailableBeds, h.HasEmergency, h.IsOpen, h.CreatedAt, h.UpdatedAt)
}

func listHospitalsQuery(ids []string) sq.SelectBuilder {
	q := psql.Select(hospitalColumns...).From("hospitals")
	if ids != nil {
		q = q.Where(sq.Eq{"id": ids})
	}
	return q.OrderBy("name ASC")
}

func updateHospitalQuery(id string, req hospitals.UpdateHospitalRequest, now time.Time) sq.UpdateBuilder {
	q := psql.Update("hospitals").Set("updated_at", now)
	if req.AvailableBeds != nil {
		q = q.Set("available_beds", *req.AvailableBeds)
	}
	if req.IsOpen != nil {
		q = q.Set("is_open", *req.IsOpen)
	}
	if req.HasEmergency != nil {
		q = q.Set("has_emergency", *req.HasEmergency)
	}
	return q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + strings.Join(hospitalColumns, ", "))
}

func scanHospital(row pgx.Row) (*hospitals.Hospital, error) {
	var h hospitals.Hospital
	err := row.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Latitude, &h.Longitude,
		&h.AvailableBeds, &h.HasEmergency, &h.IsOpen, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (repo *Repository) CreateHospital(h *hospitals.Hospital) error {
	now := time.Now().UTC()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.UpdatedAt = now

	if _, err := repo.exec(insertHospitalQuery(h)); err != nil {
		return fmt.Errorf("could not create hospital: %w", err)
	}

	return nil
}

// GetHospitals lists every hospital, or only those in ids when ids is non-nil.
func (repo *Repository) GetHospitals(ids []string) ([]*hospitals.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := repo.query(ctx, listHospitalsQuery(ids))
	if err != nil {
		return nil, fmt.Errorf("could not query hospitals: %w", err)
	}
	defer rows.Close()

	results := []*hospitals.Hospital{}
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan hospital: %w", err)
		}
		results = append(results, h)
	}

	return results, rows.Err()
}

func (repo *Repository) UpdateHospital(id string, req hospitals.UpdateHospitalRequest) (*hospitals.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row, err := repo.queryRow(ctx, updateHospitalQuery(id, req, time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	h, err := scanHospital(row)
	if err != nil {
		return nil, fmt.Errorf("could not update hospital: %w", err)
	}

	return h, nil
}
