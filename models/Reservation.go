package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation lifecycle states. A reservation is created as pending and is
// only ever moved between these three states by an admin; records are never
// deleted.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// ReservationStatuses lists the states an admin may assign.
var ReservationStatuses = []string{ReservationPending, ReservationConfirmed, ReservationCancelled}

type Reservation struct {
	gorm.Model
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Name           string    `json:"name"` // "FirstName LastName", derived on submit
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Company        string    `json:"company"`
	CheckIn        time.Time `json:"checkin" gorm:"index"`
	CheckOut       time.Time `json:"checkout" gorm:"index"`
	Guests         int       `json:"guests"` // 1..14, whole cottage only
	TotalPrice     int       `json:"totalPrice"`
	Nights         int       `json:"nights"`
	Message        string    `json:"message" gorm:"type:text"`
	Status         string    `json:"status" gorm:"type:varchar(20);default:pending;index"` // pending, confirmed, cancelled
	Source         string    `json:"source"`
	AgreeMarketing bool      `json:"agreeMarketing"`
}
