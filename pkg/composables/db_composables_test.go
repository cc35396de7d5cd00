package composables

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both driver types must satisfy the data-access surface repositories
// depend on.
var (
	_ Tx = (*pgxpool.Pool)(nil)
	_ Tx = (pgx.Tx)(nil)
)

func TestUseTx_FallsBackToPool(t *testing.T) {
	pool := &pgxpool.Pool{}
	ctx := WithPool(context.Background(), pool)

	tx, err := UseTx(ctx)
	require.NoError(t, err)
	assert.Equal(t, Tx(pool), tx)
}

func TestUseTx_NoPoolNoTx(t *testing.T) {
	_, err := UseTx(context.Background())
	assert.ErrorIs(t, err, ErrNoPool)
}
