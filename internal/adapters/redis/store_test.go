package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ipcli/internal/adapters/redis"
	"github.com/aretw0/ipcli/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)
	store := redis.NewFromClient(client)
	ports.RunScriptStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithPrefix("test:"))

	require.NoError(t, store.Save(context.Background(), "house", "dr 1 1 4 4 t;\n"))

	got, err := mr.Get("test:script:house")
	require.NoError(t, err)
	assert.Equal(t, "dr 1 1 4 4 t;\n", got)
	assert.True(t, mr.Exists("test:index"))
}

func TestRedisStore_ScriptNamedIndex(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "logo", "dc 4 4 2 t;\n"))
	require.NoError(t, store.Save(ctx, "index", "i;\n"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index", "logo"}, names)

	got, err := mr.Get(redis.DefaultPrefix + "script:index")
	require.NoError(t, err)
	assert.Equal(t, "i;\n", got)
}

func TestRedisStore_TTL(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short", "i;\n"))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"script:short"))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "short")
	assert.Error(t, err)
}

func TestRedisStore_NewFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := redis.NewFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Save(context.Background(), "a", "q;\n"))

	_, err = redis.NewFromURL("http://nope")
	assert.Error(t, err)
}
