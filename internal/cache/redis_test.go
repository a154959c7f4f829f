package cache

import (
	"context"
	"testing"

	"polyglot/internal/observability"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		addr    string
		wantNil bool
	}{
		{"empty address disables redis", "", true},
		{"bare address", mr.Addr(), false},
		{"redis url", "redis://" + mr.Addr() + "/0", false},
		{"unsupported scheme", "http://" + mr.Addr(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := Connect(tt.addr)
			if tt.wantNil {
				assert.Nil(t, client)
				return
			}
			require.NotNil(t, client)
			defer client.Close()
			assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		})
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Nil(t, Connect(addr))
}

func TestMetricsHookCountsErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := Connect(mr.Addr())
	require.NotNil(t, client)
	defer client.Close()

	counter := observability.RedisErrorRate.WithLabelValues("incr")
	before := testutil.ToFloat64(counter)

	require.NoError(t, client.Set(context.Background(), "word", "not-a-number", 0).Err())
	assert.Error(t, client.Incr(context.Background(), "word").Err())

	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	// A missing key is not an error.
	nilCounter := observability.RedisErrorRate.WithLabelValues("get")
	beforeGet := testutil.ToFloat64(nilCounter)
	_ = client.Get(context.Background(), "absent").Err()
	assert.Equal(t, beforeGet, testutil.ToFloat64(nilCounter))
}
