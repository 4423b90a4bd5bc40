package polkadot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/ecosystems/polkadot"
	"github.com/openweb3-io/chaindata/testutil"
	"github.com/openweb3-io/chaindata/types"
)

const testAddress = types.Address("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")

func TestTransactionsSlidesBlockWindow(t *testing.T) {
	server, close := testutil.MockJSONAPI(t, []string{
		`{
			"items": [{"txHash": "0xaaa", "chain": "dot", "blockNumber": 900}],
			"pageSize": 1,
			"hasNextPage": true,
			"nextEndBlock": 899
		}`,
		`{
			"items": [{"txHash": "0xbbb", "chain": "dot", "blockNumber": 850}],
			"pageSize": 1,
			"hasNextPage": false
		}`,
	})
	defer close()

	dotClient := polkadot.NewClient(client.NewClient(server.URL, "test-key"))
	page, err := dotClient.Transactions(context.Background(), types.DOT, testAddress)
	require.NoError(t, err)
	require.True(t, page.HasNext())
	require.NotNil(t, page.NextPageKeys().EndBlock)
	require.EqualValues(t, 899, *page.NextPageKeys().EndBlock)

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, types.TxHash("0xbbb"), page.Transactions()[0].TxHash)
	require.False(t, page.HasNext())
}

func TestSS58Validation(t *testing.T) {
	dotClient := polkadot.NewClient(client.NewClient("http://localhost:0", "test-key"))

	vectors := []struct {
		name    string
		address types.Address
	}{
		{"garbage", "not-an-address"},
		{"checksum flip", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ"},
		{"too short", "5Grwva"},
		{"empty", ""},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			_, err := dotClient.Transactions(context.Background(), types.KSM, v.address)
			var typed *types.Error
			require.ErrorAs(t, err, &typed)
			require.Equal(t, types.ErrInvalidAddress.Code, typed.Code)
		})
	}
}
