package messages

import (
	"strings"
	"time"
)

type Sender string

const (
	SenderPatient Sender = "patient"
	SenderDoctor  Sender = "doctor"
)

func (s Sender) Valid() bool {
	return s == SenderPatient || s == SenderDoctor
}

type Message struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	Body      string    `json:"message"`
	Sender    Sender    `json:"sender"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SendRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type SaveRequest struct {
	DoctorID string `json:"doctorId"`
	Message  string `json:"message"`
	Sender   Sender `json:"sender"`
}

// Complete reports whether every field is present and the sender is known.
func (r SaveRequest) Complete() bool {
	return r.DoctorID != "" && strings.TrimSpace(r.Message) != "" && r.Sender.Valid()
}

// Inbound is a reply received from a doctor through the messaging gateway.
type Inbound struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

type Response struct {
	Success  bool       `json:"success"`
	Messages []*Message `json:"messages"`
}

type SingleResponse struct {
	Success bool     `json:"success"`
	Message *Message `json:"message"`
}
