package models

import (
	"time"

	"gorm.io/gorm"
)

// Track is a row of the station music library. The scheduler only reads
// tracks; imports and edits happen in the dashboard's library screens.
type Track struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title  string `gorm:"index;not null" json:"title"`
	Artist string `gorm:"index" json:"artist"`

	// Runs is the track length as entered by station staff. Imports leave it
	// in whatever shape the source sheet had: "3:45", "0:02:30", raw seconds,
	// even a spreadsheet fractional-day decimal. Parsing happens at
	// schedule-assembly time, never on write.
	Runs string `gorm:"column:runs" json:"runs"`

	Category string `gorm:"index" json:"category"` // e.g. "Rock", "Jazz", "Station ID"
	Intro    bool   `gorm:"default:false" json:"intro"`
	Ending   bool   `gorm:"default:false" json:"ending"`
	Year     string `json:"year"`

	// PlaylistName is the source sheet/playlist the track was imported from
	PlaylistName string `gorm:"index" json:"playlist_name"`
}
