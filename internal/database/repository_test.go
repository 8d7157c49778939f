package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nncsumb/moviePlaylist/internal/database"
	"github.com/nncsumb/moviePlaylist/models"
)

func setupRepository(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.NewDB(database.Config{
		DatabasePath: filepath.Join(t.TempDir(), "playlists.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db.Repository
}

func TestCreateAndGetUser(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Casey", fetched.Name)

	_, err = repo.GetUser(ctx, "missing")
	require.ErrorIs(t, err, database.ErrUserNotFound)
}

func TestCreatePlaylistAssignsIncreasingOrder(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)

	first, err := repo.CreatePlaylist(ctx, user.ID, "Watch Later")
	require.NoError(t, err)
	require.Equal(t, 1, first.Order)

	second, err := repo.CreatePlaylist(ctx, user.ID, "Favorites")
	require.NoError(t, err)
	require.Equal(t, 2, second.Order)

	// Another user's playlists start their own order sequence.
	other, err := repo.CreateUser(ctx, "Robin")
	require.NoError(t, err)
	otherFirst, err := repo.CreatePlaylist(ctx, other.ID, "Queue")
	require.NoError(t, err)
	require.Equal(t, 1, otherFirst.Order)

	playlists, err := repo.ListPlaylists(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, playlists, 2)
	require.Equal(t, "Watch Later", playlists[0].Name)
	require.Equal(t, "Favorites", playlists[1].Name)
}

func TestUpdatePlaylist(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)
	playlist, err := repo.CreatePlaylist(ctx, user.ID, "Watch Later")
	require.NoError(t, err)

	err = repo.UpdatePlaylist(ctx, playlist.ID, models.PlaylistUpdate{
		Name:  "Weekend Queue",
		Order: 5,
		Color: "#aa3366",
	})
	require.NoError(t, err)

	updated, err := repo.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	require.Equal(t, "Weekend Queue", updated.Name)
	require.Equal(t, 5, updated.Order)
	require.Equal(t, "#aa3366", updated.Color)

	err = repo.UpdatePlaylist(ctx, 9999, models.PlaylistUpdate{Name: "x"})
	require.ErrorIs(t, err, database.ErrPlaylistNotFound)
}

func TestDeletePlaylistDoesNotCascade(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)
	playlist, err := repo.CreatePlaylist(ctx, user.ID, "Watch Later")
	require.NoError(t, err)

	_, err = repo.AddPlaylistItem(ctx, playlist.ID, "tt0111161", models.ContentTypeMovie)
	require.NoError(t, err)

	require.NoError(t, repo.DeletePlaylist(ctx, playlist.ID))

	_, err = repo.GetPlaylist(ctx, playlist.ID)
	require.ErrorIs(t, err, database.ErrPlaylistNotFound)

	items, err := repo.ListPlaylistItems(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, items, 1, "items must survive playlist deletion")
}

func TestAddPlaylistItemRejectsDuplicates(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)
	playlist, err := repo.CreatePlaylist(ctx, user.ID, "Watch Later")
	require.NoError(t, err)

	item, err := repo.AddPlaylistItem(ctx, playlist.ID, "tt0111161", models.ContentTypeMovie)
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	_, err = repo.AddPlaylistItem(ctx, playlist.ID, "tt0111161", models.ContentTypeMovie)
	require.ErrorIs(t, err, database.ErrDuplicateItem)

	// Same id under the other content type is a different title reference.
	_, err = repo.AddPlaylistItem(ctx, playlist.ID, "tt0111161", models.ContentTypeSeries)
	require.NoError(t, err)

	items, err := repo.ListPlaylistItems(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestDeletePlaylistItem(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "Casey")
	require.NoError(t, err)
	playlist, err := repo.CreatePlaylist(ctx, user.ID, "Watch Later")
	require.NoError(t, err)
	item, err := repo.AddPlaylistItem(ctx, playlist.ID, "tt0111161", models.ContentTypeMovie)
	require.NoError(t, err)

	require.NoError(t, repo.DeletePlaylistItem(ctx, playlist.ID, item.ID))

	items, err := repo.ListPlaylistItems(ctx, playlist.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
