package dto

import "time"

type AppointmentServiceDTO struct {
	ServiceID   uint    `json:"service_id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
}

type AppointmentListDTO struct {
	ID            uint                    `json:"id"`
	StartTime     time.Time               `json:"start_time"`
	EndTime       time.Time               `json:"end_time"`
	Status        string                  `json:"status"`
	ClientName    string                  `json:"client_name"`
	ClientPhone   string                  `json:"client_phone"`
	EmployeeName  string                  `json:"employee_name"`
	Services      []AppointmentServiceDTO `json:"services"`
	TotalDuration int                     `json:"total_duration"`
	TotalPrice    float64                 `json:"total_price"`
}
