package types

import (
	"encoding/json"
	"time"
)

// Transaction is the classified transaction envelope returned by the hosted
// API. The classification and raw payloads are ecosystem-specific and are
// passed through unchanged; callers that want the details unmarshal the raw
// messages themselves.
type Transaction struct {
	TxHash      TxHash `json:"txHash"`
	Chain       Chain  `json:"chain,omitempty"`
	BlockNumber int64  `json:"blockNumber,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`

	// The classification verdict, e.g. the transaction type and a
	// human-readable description. Opaque to this SDK.
	ClassificationData json.RawMessage `json:"classificationData,omitempty"`

	// The decoded-but-unclassified transaction, as the backend returned it.
	// Opaque to this SDK.
	RawTransactionData json.RawMessage `json:"rawTransactionData,omitempty"`
}

func (tx *Transaction) Time() time.Time {
	return time.Unix(tx.Timestamp, 0).UTC()
}

// SimulationResult is the outcome of a pre-sign simulation: the transaction
// classified as if it had been executed.
type SimulationResult struct {
	// Whether the simulated execution succeeded.
	Success bool `json:"success"`
	// Failure reason when Success is false.
	Revert string `json:"revert,omitempty"`

	ClassificationData json.RawMessage `json:"classificationData,omitempty"`
}
