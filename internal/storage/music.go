package storage

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
)

// --- Albums of the year ---

const albumColumns = `id, year, rank, artist, album, album_art_url, spotify_link, apple_link, vinyl_link, blurb, created_at`

func (s *Store) queryAlbums(ctx context.Context, query string, args ...any) ([]models.Album, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query albums")
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var a models.Album
		var vinyl, blurb sql.NullString
		err := rows.Scan(&a.ID, &a.Year, &a.Rank, &a.Artist, &a.Album, &a.AlbumArtURL,
			&a.SpotifyLink, &a.AppleLink, &vinyl, &blurb, &a.CreatedAt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan album")
		}
		a.VinylLink = stringPtr(vinyl)
		a.Blurb = stringPtr(blurb)
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// GetAlbumsOfTheYear returns up to limit albums for a year, best rank first
func (s *Store) GetAlbumsOfTheYear(ctx context.Context, year, limit int) ([]models.Album, error) {
	return s.queryAlbums(ctx, `SELECT `+albumColumns+`
		FROM albums_of_the_year WHERE year = ? ORDER BY rank ASC LIMIT ?`, year, limit)
}

// GetAllAlbumsOfTheYear returns every yearly album
func (s *Store) GetAllAlbumsOfTheYear(ctx context.Context) ([]models.Album, error) {
	return s.queryAlbums(ctx, `SELECT `+albumColumns+`
		FROM albums_of_the_year ORDER BY year DESC, rank ASC LIMIT 1000`)
}

// GetAlbumYears returns the years that have a list, newest first
func (s *Store) GetAlbumYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT year FROM albums_of_the_year ORDER BY year DESC
	`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query album years")
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, goerr.Wrap(err, "failed to scan album year")
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// --- Top 100 ---

// GetTop100Albums returns the all-time list ordered by rank
func (s *Store) GetTop100Albums(ctx context.Context) ([]models.Top100Album, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rank, album, artist, release_date, spotify_url, apple_music_url, artwork_url
		FROM top_100_albums ORDER BY rank LIMIT 100
	`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query top 100 albums")
	}
	defer rows.Close()

	var albums []models.Top100Album
	for rows.Next() {
		var a models.Top100Album
		var spotify, apple sql.NullString
		err := rows.Scan(&a.ID, &a.Rank, &a.Album, &a.Artist, &a.ReleaseDate,
			&spotify, &apple, &a.ArtworkURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan top 100 album")
		}
		a.SpotifyURL = stringPtr(spotify)
		a.AppleMusicURL = stringPtr(apple)
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// --- Music history ---

// GetListens returns a page of the recent music feed, newest first
func (s *Store) GetListens(ctx context.Context, offset, limit int) ([]models.Listen, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, artist, type, album_art_url, apple_music_url, spotify_url, created_at
		FROM music_history ORDER BY created_at DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query music history",
			goerr.V("offset", offset), goerr.V("limit", limit))
	}
	defer rows.Close()

	var listens []models.Listen
	for rows.Next() {
		var l models.Listen
		var apple, spotify sql.NullString
		err := rows.Scan(&l.ID, &l.Title, &l.Artist, &l.Type, &l.AlbumArtURL,
			&apple, &spotify, &l.CreatedAt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan listen")
		}
		l.AppleMusicURL = stringPtr(apple)
		l.SpotifyURL = stringPtr(spotify)
		listens = append(listens, l)
	}
	return listens, rows.Err()
}
