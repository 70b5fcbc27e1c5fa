package models

import "time"

// Slot is one 30-minute unit of an employee's calendar grid.
// At most one row exists per (employee, date, time).
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint   `gorm:"uniqueIndex:idx_slots_employee_date_time;not null" json:"employee_id"`
	Date       string `gorm:"size:10;uniqueIndex:idx_slots_employee_date_time;not null" json:"date"` // "2025-05-21"
	Time       string `gorm:"size:5;uniqueIndex:idx_slots_employee_date_time;not null" json:"time"`  // "14:00"

	IsBooked bool `gorm:"default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
