package dto

import "time"

type AppointmentListDTO struct {
	ID              uint       `json:"id"`
	AppointmentDate string     `json:"appointment_date"`
	AppointmentTime string     `json:"appointment_time"`
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	ClientName      string     `json:"client_name"`
	ServiceName     string     `json:"service_name"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}
