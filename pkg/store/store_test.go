package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhunt/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfun/alfred-unit-converter/pkg/units"
)

func TestMain(m *testing.M) {
	log.SetupLogging(log.LogConfig{Type: "file", File: "/dev/null", Level: "error"})
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "units.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	s := openTestStore(t)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6.35029}))
	require.NoError(t, s.Save(Conversion{Symbol: "R", Factor: 5.0 / 9.0, Offset: -491.67}))
	require.NoError(t, s.Save(Conversion{Symbol: "league", Factor: 4828.03}))

	list, err = s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "R", list[0].Symbol)
	assert.Equal(t, -491.67, list[0].Offset)
	assert.Equal(t, "league", list[1].Symbol)
	assert.Equal(t, "stone", list[2].Symbol)
	assert.WithinDuration(t, time.Now(), list[2].UpdatedAt, time.Minute)
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6}))
	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6.35029}))

	c, err := s.Get("stone")
	require.NoError(t, err)
	assert.Equal(t, 6.35029, c.Factor)

	list, err := s.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveRejectsEmptySymbol(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Save(Conversion{Factor: 1}))
}

func TestDeleteAndClear(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6.35029}))
	require.NoError(t, s.Save(Conversion{Symbol: "league", Factor: 4828.03}))

	require.NoError(t, s.Delete("stone"))
	_, err := s.Get("stone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("stone"), ErrNotFound)

	require.NoError(t, s.Clear())
	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApply(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6.35029}))
	require.NoError(t, s.Save(Conversion{Symbol: "mile", Factor: 1609.344}))

	r := units.NewRegistry()
	n, err := s.Apply(r)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stone, err := r.Resolve("kstone")
	require.NoError(t, err)
	assert.InDelta(t, 6350.29, stone.Factor, 1e-9)

	mile, ok := r.Lookup("mile")
	require.True(t, ok)
	assert.Equal(t, 1609.344, mile.Factor)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(Conversion{Symbol: "stone", Factor: 6.35029}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	c, err := s.Get("stone")
	require.NoError(t, err)
	assert.Equal(t, 6.35029, c.Factor)
}
