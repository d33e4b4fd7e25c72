package models

import (
	"time"

	"gorm.io/gorm"
)

// Playlist is a saved broadcast schedule. Generated schedules only become
// playlists through an explicit save from the dashboard.
type Playlist struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SongCount   int    `gorm:"default:0" json:"song_count"`

	Entries []PlaylistEntry `gorm:"foreignKey:PlaylistID" json:"entries,omitempty"`
}

// PlaylistEntry is one timed item of a saved playlist, in broadcast order.
type PlaylistEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PlaylistID uint   `gorm:"not null;index" json:"playlist_id"`
	Position   int    `gorm:"not null" json:"position"`
	Title      string `gorm:"not null" json:"title"`
	Artist     string `json:"artist"`
	Duration   string `json:"duration"`   // "M:SS"
	StartTime  string `json:"start_time"` // clock offset from show start
	EndTime    string `json:"end_time"`
	Kind       string `gorm:"default:'song'" json:"kind"` // "song", "break", "interstitial"
	Notes      string `gorm:"type:text" json:"notes"`
}
