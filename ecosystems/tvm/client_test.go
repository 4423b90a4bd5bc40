package tvm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/ecosystems/tvm"
	"github.com/openweb3-io/chaindata/testutil"
	"github.com/openweb3-io/chaindata/types"
)

const testAddress = types.Address("TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t")

func TestTransactionsFollowsNextPageUrl(t *testing.T) {
	server, close := testutil.MockJSONAPI(t, []string{
		`{
			"items": [{"txHash": "aaa", "chain": "tron", "timestamp": 1700000300}],
			"pageSize": 1,
			"hasNextPage": true,
			"nextPageUrl": "https://api.example.com/v1/tvm/tron/txs/TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t?endTimestamp=1700000299&pageSize=1"
		}`,
		`{
			"items": [{"txHash": "bbb", "chain": "tron", "timestamp": 1700000200}],
			"pageSize": 1,
			"hasNextPage": false
		}`,
	})
	defer close()

	tvmClient := tvm.NewClient(client.NewClient(server.URL, "test-key"))
	page, err := tvmClient.Transactions(context.Background(), types.TRX, testAddress)
	require.NoError(t, err)
	require.True(t, page.HasNext())

	keys := page.NextPageKeys()
	require.NotNil(t, keys)
	require.NotNil(t, keys.EndTimestamp)
	require.EqualValues(t, 1700000299, *keys.EndTimestamp)
	require.Equal(t, 1, keys.PageSize)

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, types.TxHash("bbb"), page.Transactions()[0].TxHash)
	require.False(t, page.HasNext())
	require.True(t, page.HasPrevious())
}

func TestBase58CheckValidation(t *testing.T) {
	tvmClient := tvm.NewClient(client.NewClient("http://localhost:0", "test-key"))

	vectors := []struct {
		name    string
		address types.Address
	}{
		{"garbage", "not-an-address"},
		{"eth hex", "0x1f9090aaE28b8a3dCeaDf281B0F12828e676c326"},
		{"checksum flip", "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6u"},
		{"wrong prefix", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{"empty", ""},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			_, err := tvmClient.Transactions(context.Background(), types.TRX, v.address)
			var typed *types.Error
			require.ErrorAs(t, err, &typed)
			require.Equal(t, types.ErrInvalidAddress.Code, typed.Code)
		})
	}
}

func TestTransactionsRejectsForeignChain(t *testing.T) {
	tvmClient := tvm.NewClient(client.NewClient("http://localhost:0", "test-key"))
	_, err := tvmClient.Transactions(context.Background(), types.ETH, testAddress)
	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrUnsupportedChain.Code, typed.Code)
}
