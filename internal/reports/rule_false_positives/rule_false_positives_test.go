package rulefalsepositives

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rfp "github.com/benedict-erwin/soc-dashboard/internal/entities/rule_false_positives"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/database"
)

func TestHandleRendersCharts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	dir := t.TempDir()

	mock.ExpectQuery("HAVING COUNT").
		WillReturnRows(sqlmock.NewRows(rfp.GetQueryConfig().Columns).
			AddRow("R-101", "PowerShell Encoded Command", "Execution", "T1059.001", int64(10), int64(9), int64(1), 0.9).
			AddRow("R-204", "Impossible Travel", "Initial Access", "T1078", int64(20), int64(5), int64(15), 0.25).
			AddRow("R-310", "LDAP Enumeration", "Discovery", "T1087", int64(4), int64(0), int64(4), 0.0))

	res := Handle(context.Background(), database.NewSession(db, "mysql"), charts.NewRenderer(dir, 0, 0))
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Rows)
	assert.Len(t, res.Charts, 4)

	for _, file := range rfp.GetQueryConfig().Charts {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, file)
		assert.Greater(t, info.Size(), int64(0))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleEmptyResultWritesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	dir := t.TempDir()

	mock.ExpectQuery("HAVING COUNT").WillReturnRows(sqlmock.NewRows(rfp.GetQueryConfig().Columns))

	res := Handle(context.Background(), database.NewSession(db, "mysql"), charts.NewRenderer(dir, 0, 0))
	require.NoError(t, res.Err)
	assert.Empty(t, res.Charts)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHandleNullStatusSums(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	dir := t.TempDir()

	// R-2 has alerts but none with a status, so both SUMs and the rate are NULL
	mock.ExpectQuery("HAVING COUNT").
		WillReturnRows(sqlmock.NewRows(rfp.GetQueryConfig().Columns).
			AddRow("R-1", "Brute Force", "Credential Access", "T1110", int64(10), int64(3), int64(7), 0.3).
			AddRow("R-2", "Port Scan", "Discovery", "T1046", int64(4), nil, nil, nil))

	res := Handle(context.Background(), database.NewSession(db, "mysql"), charts.NewRenderer(dir, 0, 0))
	require.NoError(t, res.Err)
	assert.Equal(t, 2, res.Rows)
	assert.Len(t, res.Charts, 4)
	assert.Empty(t, res.Skipped)

	for _, file := range rfp.GetQueryConfig().Charts {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, file)
		assert.Greater(t, info.Size(), int64(0))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
