package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConnect_GivesUpAfterMaxRetries(t *testing.T) {
	opts := DefaultConnectOptions()
	opts.MaxRetries = 2
	opts.RetryDelay = time.Millisecond

	// Nothing listens on port 1
	db, err := Connect("host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1", opts, zap.NewNop())

	assert.Nil(t, db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestDefaultConnectOptions(t *testing.T) {
	opts := DefaultConnectOptions()

	assert.Equal(t, 30, opts.MaxRetries)
	assert.Equal(t, 2*time.Second, opts.RetryDelay)
	assert.Equal(t, 25, opts.MaxOpenConns)
}
