package dataset

import (
	"fmt"
	"path/filepath"
)

// TransactionsPath returns the expected transaction file for a client,
// e.g. data/client_7_transactions_3m.csv.
func TransactionsPath(dataDir string, clientCode int) string {
	return filepath.Join(dataDir, fmt.Sprintf("client_%d_transactions_3m.csv", clientCode))
}

// TransfersPath returns the expected transfer file for a client,
// e.g. data/client_7_transfers_3m.csv.
func TransfersPath(dataDir string, clientCode int) string {
	return filepath.Join(dataDir, fmt.Sprintf("client_%d_transfers_3m.csv", clientCode))
}
