package operation

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AircraftCategory partitions the fleet. Tow planes are engine aircraft
// that can also launch gliders.
type AircraftCategory string

const (
	CategoryTowPlane AircraftCategory = "tow_plane"
	CategoryGlider   AircraftCategory = "glider"
	CategoryEngine   AircraftCategory = "engine"
)

type Pilot struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	FirstName     string `gorm:"size:64;not null" json:"first_name"`
	LastName      string `gorm:"size:64;not null" json:"last_name"`
	Email         string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password      string `gorm:"size:128;not null" json:"-"`
	AuthSubject   string `gorm:"size:128;index" json:"-"`
	Admin         bool   `gorm:"default:0;not null" json:"admin"`
	Instructor    bool   `gorm:"default:0;not null" json:"instructor"`
	TowPilot      bool   `gorm:"default:0;not null" json:"tow_pilot"`
	WeeklySummary bool   `gorm:"default:1;not null" json:"weekly_summary"`

	EngineFlights []*EngineFlight `gorm:"foreignKey:PilotID;references:ID" json:"-"`
	GliderFlights []*GliderFlight `gorm:"foreignKey:PilotID;references:ID" json:"-"`
	AgendaSlots   []*AgendaSlot   `gorm:"foreignKey:PilotID;references:ID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (pilot *Pilot) DisplayName() string {
	return fmt.Sprintf("%s %s", pilot.FirstName, pilot.LastName)
}

type Aircraft struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	Registration string           `gorm:"size:16;uniqueIndex;not null" json:"registration"`
	Name         string           `gorm:"size:64;not null" json:"name"`
	Category     AircraftCategory `gorm:"size:16;not null" json:"category"`
	Active       bool             `gorm:"default:1;not null" json:"active"`
	CreatedAt    time.Time        `json:"-"`
	UpdatedAt    time.Time        `json:"-"`
}

// EngineFlight is one completed flight of a powered aircraft. FlightDate
// holds the calendar date; departure and arrival are local "HH:MM" strings.
// DurationHours is authoritative, arrival may precede departure when a
// flight crosses midnight.
type EngineFlight struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	FlightDate      time.Time      `gorm:"index;not null" json:"flight_date"`
	PilotID         uint           `gorm:"index;not null" json:"pilot_id"`
	InstructorID    *uint          `gorm:"index" json:"instructor_id"`
	AircraftID      uint           `gorm:"index;not null" json:"aircraft_id"`
	DepartureTime   string         `gorm:"size:5;not null" json:"departure_time"`
	ArrivalTime     string         `gorm:"size:5;not null" json:"arrival_time"`
	DurationHours   float64        `gorm:"not null" json:"duration_hours"`
	Purpose         string         `gorm:"size:32;not null" json:"purpose"`
	Notes           string         `gorm:"type:text" json:"notes"`
	SlotID          *uint          `gorm:"index" json:"slot_id"`
	BillableMinutes *int           `json:"billable_minutes"`
	Route           *string        `gorm:"size:256" json:"route"`
	Landings        *int           `json:"landings"`
	Tows            *int           `json:"tows"`
	OilAddedLiters  *float64       `json:"oil_added_liters"`
	FuelAddedLiters *float64       `json:"fuel_added_liters"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
	DeletedAt       gorm.DeletedAt `json:"-"`
}

// GliderFlight is one completed glider flight, optionally towed aloft by a
// tow pilot flying a tow plane.
type GliderFlight struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	FlightDate    time.Time      `gorm:"index;not null" json:"flight_date"`
	PilotID       uint           `gorm:"index;not null" json:"pilot_id"`
	InstructorID  *uint          `gorm:"index" json:"instructor_id"`
	AircraftID    uint           `gorm:"index;not null" json:"aircraft_id"`
	TowPilotID    *uint          `gorm:"index" json:"tow_pilot_id"`
	TowAircraftID *uint          `gorm:"index" json:"tow_aircraft_id"`
	DepartureTime string         `gorm:"size:5;not null" json:"departure_time"`
	ArrivalTime   string         `gorm:"size:5;not null" json:"arrival_time"`
	DurationHours float64        `gorm:"not null" json:"duration_hours"`
	Purpose       string         `gorm:"size:32;not null" json:"purpose"`
	Notes         string         `gorm:"type:text" json:"notes"`
	SlotID        *uint          `gorm:"index" json:"slot_id"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `json:"-"`
}

// SlotCategory mirrors the agenda's row kinds: a regular flying slot, an
// instructor on duty, or a tow pilot on duty.
type SlotCategory string

const (
	SlotPilot      SlotCategory = "pilot"
	SlotInstructor SlotCategory = "instructor"
	SlotTowPilot   SlotCategory = "tow_pilot"
)

const (
	SlotOpen = iota
	SlotBooked
	SlotFlown
	SlotCancelled
)

type AgendaSlot struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SlotDate   time.Time      `gorm:"index;not null" json:"slot_date"`
	StartTime  string         `gorm:"size:5;not null" json:"start_time"`
	EndTime    string         `gorm:"size:5;not null" json:"end_time"`
	Category   SlotCategory   `gorm:"size:16;not null" json:"category"`
	PilotID    *uint          `gorm:"index" json:"pilot_id"`
	AircraftID *uint          `gorm:"index" json:"aircraft_id"`
	Available  bool           `gorm:"default:1;not null" json:"available"`
	Status     int            `gorm:"default:0;not null" json:"status"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `json:"-"`
}

type AuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PilotID   uint      `gorm:"index;not null" json:"pilot_id"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	Object    string    `gorm:"size:128;not null" json:"object"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Ip        string    `gorm:"size:64" json:"ip"`
	UserAgent string    `gorm:"size:256" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
