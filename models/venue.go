package models

import (
	"encoding/json"
	"time"
)

// Venue is a place with a weekly opening schedule.
type Venue struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Category     string         `bson:"category,omitempty" json:"category,omitempty"`
	TimeZone     string         `bson:"timeZone" json:"timeZone"`
	OpeningTimes WeeklySchedule `bson:"openingTimes" json:"openingTimes"`
	Alterations  Alterations    `bson:"alterations,omitempty" json:"alterations,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// VenueRequest is the create/update payload. Opening times and alterations
// are kept raw so the legacy shapes can be normalised.
type VenueRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	TimeZone     string          `json:"timeZone" binding:"required"`
	OpeningTimes json.RawMessage `json:"openingTimes" binding:"required"`
	Alterations  json.RawMessage `json:"alterations,omitempty"`
}

// VenueStatus is the open/closed answer for one venue at one instant.
type VenueStatus struct {
	VenueID    string     `json:"venueId"`
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	TimeZone   string     `json:"timeZone"`
	Instant    time.Time  `json:"instant"`
	IsOpen     bool       `json:"isOpen"`
	NextOpen   *time.Time `json:"nextOpen,omitempty"`
	NextClosed *time.Time `json:"nextClosed,omitempty"`
	Message    string     `json:"message"`
}

// VenueHours is the display form of a venue's weekly schedule.
type VenueHours struct {
	VenueID     string                        `json:"venueId"`
	Name        string                        `json:"name"`
	TimeZone    string                        `json:"timeZone"`
	Hours       map[string][]FormattedSession `json:"hours"`
	Alterations Alterations                   `json:"alterations,omitempty"`
}
