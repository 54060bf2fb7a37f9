package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.csv")
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(resultsPath, tradesPath)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.Equal(t, resultsHeader, readHeader(t, resultsPath))
	assert.Equal(t, tradesHeader, readHeader(t, tradesPath))
}

func TestCSVJournalRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.csv")
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(resultsPath, tradesPath)
	require.NoError(t, err)

	entry := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	exit := entry.Add(time.Minute)

	require.NoError(t, j.RecordResult(ResultRecord{
		RunID:       "R1",
		Strategy:    "SMA(5)",
		Trades:      3,
		Wins:        2,
		WinRate:     66.5,
		TotalPL:     12.25,
		AvgPL:       4.0833,
		LargestWin:  9,
		LargestLoss: -3.5,
		Sharpe:      1.2,
		MaxDrawdown: -3.5,
	}))
	require.NoError(t, j.RecordTrade(TradeRecord{
		RunID:         "R1",
		Strategy:      "SMA(5)",
		EntryTime:     entry,
		EntryPrice:    100.5,
		ExitTime:      exit,
		ExitPrice:     103,
		ProfitLoss:    2.5,
		ProfitLossPct: 2.4876,
	}))
	require.NoError(t, j.Close())

	rows := readAll(t, resultsPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"R1", "SMA(5)", "3", "2", "66.5", "12.25", "4.0833", "9", "-3.5", "1.2", "-3.5"}, rows[1])

	rows = readAll(t, tradesPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-02T03:04:05Z", rows[1][2])
	assert.Equal(t, "2.5", rows[1][6])
}

func readHeader(t *testing.T, path string) []string {
	t.Helper()
	return readAll(t, path)[0]
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}
