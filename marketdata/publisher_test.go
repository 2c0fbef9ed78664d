package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"matchbook/domain/orderbook"
)

func TestQuoteWireFormat(t *testing.T) {
	data, err := json.Marshal(Quote{V: 1, HasBid: true, Bid: 100, HasAsk: false, Timestamp: 42})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, float64(1), m["v"])
	require.Equal(t, true, m["has_bid"])
	require.Equal(t, float64(100), m["bid"])
	require.Equal(t, false, m["has_ask"])
	require.Equal(t, float64(42), m["ts"])
}

func TestToLevels(t *testing.T) {
	in := []orderbook.LevelDepth{
		{Price: 101, Volume: 7, Orders: 2},
		{Price: 100, Volume: 3, Orders: 1},
	}
	out := toLevels(in)
	require.Len(t, out, 2)
	require.Equal(t, DepthLevel{Price: 101, Volume: 7, Orders: 2}, out[0])
	require.Equal(t, DepthLevel{Price: 100, Volume: 3, Orders: 1}, out[1])

	require.Empty(t, toLevels(nil))
}
