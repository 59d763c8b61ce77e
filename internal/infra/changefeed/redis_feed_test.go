package changefeed

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisFeed_RelaysAcrossReplicas(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	channel := "test:changes:" + uuid.NewString()
	policy := util.RetryPolicy{MaxRetries: 1, InitialDelay: 10 * time.Millisecond, MaxDelay: 10 * time.Millisecond}

	a := NewRedisFeed(client, channel, NewHub(8, discardLogger(), nil), policy, discardLogger())
	b := NewRedisFeed(client, channel, NewHub(8, discardLogger(), nil), policy, discardLogger())
	require.NoError(t, a.Start(ctx))
	require.NoError(t, b.Start(ctx))
	t.Cleanup(func() {
		_ = a.Stop(ctx)
		_ = b.Stop(ctx)
	})

	subA := a.Subscribe(entity.ChangeFilter{Table: entity.TableOrders})
	defer subA.Unsubscribe()
	subB := b.Subscribe(entity.ChangeFilter{Table: entity.TableOrders})
	defer subB.Unsubscribe()

	event := orderEvent("u-9", "shipped")
	event.RecordID = "order-1"
	require.NoError(t, a.Publish(ctx, event))

	assert.Equal(t, "order-1", receive(t, subA.Events()).RecordID)
	assert.Equal(t, "order-1", receive(t, subB.Events()).RecordID)
}

func TestRedisFeed_StopWithoutStart(t *testing.T) {
	feed := NewRedisFeed(nil, "unused", NewHub(1, discardLogger(), nil), util.DefaultRetryPolicy(), discardLogger())
	assert.NoError(t, feed.Stop(context.Background()))
}
