package svm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/ecosystems/svm"
	"github.com/openweb3-io/chaindata/testutil"
	"github.com/openweb3-io/chaindata/types"
)

const testAddress = types.Address("11111111111111111111111111111111")

func TestTransactionsPagesBySignature(t *testing.T) {
	server, close := testutil.MockJSONAPI(t, []string{
		`{
			"items": [{"txHash": "sigA", "chain": "sol"}],
			"pageSize": 1,
			"hasNextPage": true,
			"nextPageSignature": "sigA"
		}`,
		`{
			"items": [{"txHash": "sigB", "chain": "sol"}],
			"pageSize": 1,
			"hasNextPage": false
		}`,
	})
	defer close()

	svmClient := svm.NewClient(client.NewClient(server.URL, "test-key"))
	page, err := svmClient.Transactions(context.Background(), types.SOL, testAddress)
	require.NoError(t, err)
	require.True(t, page.HasNext())
	require.Equal(t, "sigA", page.NextPageKeys().Marker)

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, types.TxHash("sigB"), page.Transactions()[0].TxHash)
	require.False(t, page.HasNext())
}

func TestBase58Validation(t *testing.T) {
	svmClient := svm.NewClient(client.NewClient("http://localhost:0", "test-key"))
	_, err := svmClient.Transactions(context.Background(), types.SOL, "0x1f9090aaE28b8a3dCeaDf281B0F12828e676c326")
	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrInvalidAddress.Code, typed.Code)
}
