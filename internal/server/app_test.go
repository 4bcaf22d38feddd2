package server

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/pharmadmin/internal/server/config"
	"github.com/stretchr/testify/require"
)

func TestNewApp_MigrationFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	// Port 1 refuses immediately, so migrations fail without waiting on a
	// connect timeout. NewApp must close the handle it opened and report
	// the failure.
	cfg.DatabaseDSN = "postgres://u:p@127.0.0.1:1/pharmadmin?sslmode=disable&connect_timeout=1"
	cfg.SessionTokenValidityDuration = time.Hour

	app, err := NewApp(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "migration error")
	require.Nil(t, app)
}
