package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paracli/internal/errors"
	"paracli/pkg/contracts/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.ApplyDefaultSchema(context.Background()))
	return db
}

func sampleRecords() []domain.GamesRecord {
	return []domain.GamesRecord{
		{
			Type:          "summer",
			Year:          domain.Int(1960),
			Country:       "Italy",
			Host:          "Rome",
			Start:         time.Date(1960, 9, 18, 0, 0, 0, 0, time.UTC),
			End:           time.Date(1960, 9, 25, 0, 0, 0, 0, time.UTC),
			Duration:      domain.Int(7),
			Countries:     domain.Int(23),
			Events:        domain.Int(113),
			Participants:  domain.Int(209),
			ParticipantsM: domain.Int(0),
			Code:          "ITA",
		},
		{
			Type:    "winter",
			Country: "Atlantis",
			Host:    "Poseidonia",
		},
	}
}

func TestLoadGames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.LoadGames(ctx, sampleRecords()))

	count, err := db.CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoadGamesStoresNulls(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.LoadGames(ctx, sampleRecords()))

	var duration, participants interface{}
	var start, code interface{}
	row := db.conn.QueryRowContext(ctx,
		`SELECT duration, participants, "start", code FROM games WHERE type = 'winter'`)
	require.NoError(t, row.Scan(&duration, &participants, &start, &code))

	assert.Nil(t, duration)
	assert.Nil(t, participants)
	assert.Nil(t, start)
	assert.Nil(t, code)
}

func TestLoadGamesStoresValues(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.LoadGames(ctx, sampleRecords()))

	var duration, participantsM int64
	var start, code string
	row := db.conn.QueryRowContext(ctx,
		`SELECT duration, participants_m, "start", code FROM games WHERE type = 'summer'`)
	require.NoError(t, row.Scan(&duration, &participantsM, &start, &code))

	assert.Equal(t, int64(7), duration)
	assert.Equal(t, int64(0), participantsM, "zero is stored, not NULL")
	assert.Equal(t, "1960-09-18", start)
	assert.Equal(t, "ITA", code)
}

func TestLoadGamesReplacesExistingRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.LoadGames(ctx, sampleRecords()))
	require.NoError(t, db.LoadGames(ctx, sampleRecords()[:1]))

	count, err := db.CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApplySchemaFile(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer db.Close()

	schemaPath := filepath.Join(t.TempDir(), "schema.sql")
	schema := `CREATE TABLE games (type TEXT, year INTEGER, country TEXT, host TEXT,
		"start" TEXT, "end" TEXT, duration INTEGER, countries INTEGER, events INTEGER,
		sports INTEGER, participants_m INTEGER, participants_f INTEGER,
		participants INTEGER, code TEXT);`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))

	ctx := context.Background()
	require.NoError(t, db.ApplySchemaFile(ctx, schemaPath))
	require.NoError(t, db.LoadGames(ctx, sampleRecords()))
}

func TestApplySchemaFileMissing(t *testing.T) {
	db := openTestDB(t)

	err := db.ApplySchemaFile(context.Background(), filepath.Join(t.TempDir(), "nope.sql"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
