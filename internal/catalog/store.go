package catalog

import (
	"context"
	"fmt"

	"github.com/airlog-fm/showrunner-api/internal/logger"
	"github.com/airlog-fm/showrunner-api/internal/models"
	"github.com/airlog-fm/showrunner-api/internal/schedule"
	"gorm.io/gorm"
)

const maxFetchLimit = 1000

// Store reads candidate tracks from the station library and writes saved
// schedules back as playlists.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FetchCandidates pulls a bounded window of library tracks for prompt
// grounding. Read failures degrade to an empty set instead of propagating:
// generation continues library-free and the parser's fallback policy covers
// the rest. No filtering by request hints happens here; that is left to the
// model via the prompt.
func (s *Store) FetchCandidates(ctx context.Context, limit int) []models.Track {
	if limit <= 0 || limit > maxFetchLimit {
		limit = maxFetchLimit
	}

	var tracks []models.Track
	if err := s.db.WithContext(ctx).Limit(limit).Find(&tracks).Error; err != nil {
		logger.Error("Candidate fetch failed, continuing with empty catalog", err, logger.Fields{
			"limit": limit,
		})
		return nil
	}

	return tracks
}

// PersistAsPlaylist writes a generated schedule as a playlist with one
// entry per item, then records the song count on the playlist row. Unlike
// everything upstream, a failure here is a hard error: it means loss of
// user-requested durable state and must surface to the caller.
func (s *Store) PersistAsPlaylist(ctx context.Context, gen *schedule.Generated) (*models.Playlist, error) {
	playlist := &models.Playlist{
		Name:        gen.Title,
		Description: gen.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(playlist).Error; err != nil {
			return fmt.Errorf("failed to create playlist: %w", err)
		}

		for i, item := range gen.Items {
			entry := models.PlaylistEntry{
				PlaylistID: playlist.ID,
				Position:   i + 1,
				Title:      item.Title,
				Artist:     item.Artist,
				Duration:   item.Duration,
				StartTime:  item.StartTime,
				EndTime:    item.EndTime,
				Kind:       item.Kind,
				Notes:      item.Notes,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create playlist entry %d: %w", i+1, err)
			}
		}

		if err := tx.Model(playlist).Update("song_count", len(gen.Items)).Error; err != nil {
			return fmt.Errorf("failed to update playlist song count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	playlist.SongCount = len(gen.Items)
	return playlist, nil
}

// ListPlaylists returns saved playlists, newest first
func (s *Store) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&playlists).Error; err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

// GetPlaylist returns one playlist with its entries in broadcast order
func (s *Store) GetPlaylist(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}
