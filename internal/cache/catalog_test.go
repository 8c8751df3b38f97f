package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachhub/catalog/internal/model"
	"github.com/coachhub/catalog/internal/testutil"
)

func TestListKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "catalog:list:credit_package", listKey(model.KindCreditPackage))
	assert.Equal(t, "catalog:list:skill", listKey(model.KindSkill))
}

func TestNewWithClient_DefaultTTL(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	c := NewWithClient(client, 0)
	assert.Equal(t, DefaultListTTL, c.listTTL)
}

func TestCache_ListRoundTrip(t *testing.T) {
	ctx := context.Background()
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	c, err := New(ctx, redisURL, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.InvalidateList(ctx, model.KindCreditPackage))

	var got []*model.CreditPackage
	assert.ErrorIs(t, c.GetList(ctx, model.KindCreditPackage, &got), ErrCacheMiss)

	want := []*model.CreditPackage{{ID: "a", Name: "Gold", CreditAmount: 10, Price: decimal.NewFromInt(100)}}
	require.NoError(t, c.SetList(ctx, model.KindCreditPackage, want))

	require.NoError(t, c.GetList(ctx, model.KindCreditPackage, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Gold", got[0].Name)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(100)))

	require.NoError(t, c.InvalidateList(ctx, model.KindCreditPackage))
	assert.ErrorIs(t, c.GetList(ctx, model.KindCreditPackage, &got), ErrCacheMiss)
}
