package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Either a registered client or an external walk-in identified by name+phone.
	ClientID *uint `json:"client_id"`
	Client   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ExternalName  string `gorm:"size:100" json:"external_name,omitempty"`
	ExternalPhone string `gorm:"size:20" json:"external_phone,omitempty"`

	EmployeeID uint `gorm:"not null" json:"employee_id"`
	Employee   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	// Service snapshots frozen at booking time.
	Services []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	TotalDuration int     `json:"total_duration"`
	TotalPrice    float64 `json:"total_price"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService captures a service's duration and price at booking time,
// immune to later edits of the Service row.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
}
