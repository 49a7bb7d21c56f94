package models

import "time"

type Staff struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Title string `gorm:"size:100" json:"title"`

	// JSON template keyed by ISO weekday ("1"=Monday .. "7"=Sunday),
	// each entry {"start":"HH:MM","end":"HH:MM"}. A missing weekday
	// means the staff member does not work that day.
	WorkingHours string `gorm:"type:jsonb" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
