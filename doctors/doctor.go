package doctors

import "time"

type Availability string

const (
	Available Availability = "Available"
	Busy      Availability = "Busy"
	Offline   Availability = "Offline"
)

func (a Availability) Valid() bool {
	return a == Available || a == Busy || a == Offline
}

type Doctor struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Qualification string       `json:"qualification"`
	Experience    int          `json:"experience"`
	Hospital      string       `json:"hospital,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Availability  Availability `json:"availability"`
	Rating        float64      `json:"rating"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CreateDoctorRequest struct {
	Name          string       `json:"name" validate:"required"`
	Qualification string       `json:"qualification" validate:"required"`
	Experience    int          `json:"experience" validate:"gte=0"`
	Hospital      string       `json:"hospital"`
	Phone         string       `json:"phone"`
	Availability  Availability `json:"availability" validate:"omitempty,oneof=Available Busy Offline"`
	Rating        float64      `json:"rating" validate:"gte=0,lte=5"`
}

// Doctor builds a new record, applying the defaults for unset fields.
func (r CreateDoctorRequest) Doctor() *Doctor {
	availability := r.Availability
	if availability == "" {
		availability = Available
	}
	return &Doctor{
		Name:          r.Name,
		Qualification: r.Qualification,
		Experience:    r.Experience,
		Hospital:      r.Hospital,
		Phone:         r.Phone,
		Availability:  availability,
		Rating:        r.Rating,
	}
}

type Response struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Doctors []*Doctor `json:"doctors"`
}

type SingleResponse struct {
	Success bool    `json:"success"`
	Doctor  *Doctor `json:"doctor"`
}
