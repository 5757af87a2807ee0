package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/db"
	"fueldelivery/models"
)

func TestConnectAndDisconnect(t *testing.T) {
	var conn db.DB = NewSQLiteDB(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, conn.Connect())
	assert.NotNil(t, conn.(*SQLiteDB).Conn)
	require.NoError(t, conn.Disconnect())
}

func TestConnectNeedsPath(t *testing.T) {
	err := NewSQLiteDB("").Connect()
	assert.True(t, errors.Is(err, models.ErrConfigMissing))
}
