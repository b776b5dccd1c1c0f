package models

import (
	"time"
)

// Album is an entry in a yearly top albums list
type Album struct {
	ID          int       `json:"id" yaml:"id"`
	Year        int       `json:"year" yaml:"year"`
	Rank        int       `json:"rank" yaml:"rank"`
	Artist      string    `json:"artist" yaml:"artist"`
	Album       string    `json:"album" yaml:"album"`
	AlbumArtURL string    `json:"album_art_url" yaml:"album_art_url"`
	SpotifyLink string    `json:"spotify_link" yaml:"spotify_link"`
	AppleLink   string    `json:"apple_link" yaml:"apple_link"`
	VinylLink   *string   `json:"vinyl_link" yaml:"vinyl_link"`
	Blurb       *string   `json:"blurb" yaml:"blurb"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

// Position implements reveal.Ranked
func (a Album) Position() int { return a.Rank }

// ListYear implements reveal.Ranked
func (a Album) ListYear() int { return a.Year }

// Top100Album is an entry in the all-time top 100 list
type Top100Album struct {
	ID            int     `json:"id" yaml:"id"`
	Rank          int     `json:"rank" yaml:"rank"`
	Album         string  `json:"album" yaml:"album"`
	Artist        string  `json:"artist" yaml:"artist"`
	ReleaseDate   string  `json:"release_date" yaml:"release_date"`
	SpotifyURL    *string `json:"spotify_url" yaml:"spotify_url"`
	AppleMusicURL *string `json:"apple_music_url" yaml:"apple_music_url"`
	ArtworkURL    string  `json:"artwork_url" yaml:"artwork_url"`
}

// ListenType distinguishes albums from songs in the feed
type ListenType string

const (
	ListenAlbum ListenType = "ALBUM"
	ListenSong  ListenType = "SONG"
)

// Listen is an entry in the recent music feed
type Listen struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Artist        string     `json:"artist" yaml:"artist"`
	Type          ListenType `json:"type" yaml:"type"`
	AlbumArtURL   string     `json:"album_art_url" yaml:"album_art_url"`
	AppleMusicURL *string    `json:"apple_music_url" yaml:"apple_music_url"`
	SpotifyURL    *string    `json:"spotify_url" yaml:"spotify_url"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
}

// PickableAlbum is the shape shared by both album lists for the random picker
type PickableAlbum struct {
	Album         string  `json:"album"`
	Artist        string  `json:"artist"`
	SpotifyURL    *string `json:"spotify_url"`
	AppleMusicURL *string `json:"apple_music_url"`
	ArtworkURL    string  `json:"artwork_url"`
}
