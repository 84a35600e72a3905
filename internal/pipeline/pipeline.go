// Package pipeline runs the per-client analysis chain and the batch
// driver over a range of client IDs.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pushrec-dev/pushrec/internal/analyzer"
	"github.com/pushrec-dev/pushrec/internal/catalog"
	"github.com/pushrec-dev/pushrec/internal/dataset"
	"github.com/pushrec-dev/pushrec/internal/model"
)

// ErrMissingInput reports that a client's expected input files are
// absent. The batch treats this as a skip, not a failure.
var ErrMissingInput = errors.New("client input files missing")

// ProcessClient runs extract, score, select and render for one client
// whose files live under dataDir. The score table is returned next to
// the recommendation; the batch output discards it, the score command
// shows it.
func ProcessClient(dataDir string, clientCode int) (model.Recommendation, []catalog.ProductScore, error) {
	txns, err := readTransactions(dataset.TransactionsPath(dataDir, clientCode))
	if err != nil {
		return model.Recommendation{}, nil, err
	}

	transfers, err := readTransfers(dataset.TransfersPath(dataDir, clientCode))
	if err != nil {
		return model.Recommendation{}, nil, err
	}

	f, err := analyzer.Analyze(txns, transfers)
	if err != nil {
		return model.Recommendation{}, nil, fmt.Errorf("analyzing client %d: %w", clientCode, err)
	}

	scores := catalog.Scores(f)
	best := catalog.Best(f)

	rec := model.Recommendation{
		ClientCode: f.ClientCode,
		Product:    best.Name,
		Push:       best.Push(f),
	}
	return rec, scores, nil
}

func readTransactions(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingInput)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := dataset.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

func readTransfers(path string) ([]model.Transfer, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingInput)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	transfers, err := dataset.ReadTransfers(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return transfers, nil
}

// Runner drives a batch over the contiguous client ID range 1..Clients.
type Runner struct {
	DataDir string
	Clients int
	Log     *logrus.Logger
}

// Run processes clients in ascending ID order. Absent or failed
// clients are logged and skipped; they contribute no output row and
// never abort the batch. Returns the collected recommendations and
// the number of skipped clients.
func (r *Runner) Run() ([]model.Recommendation, int) {
	var results []model.Recommendation
	skipped := 0

	for code := 1; code <= r.Clients; code++ {
		r.Log.WithField("client", code).Info("processing client")

		rec, _, err := ProcessClient(r.DataDir, code)
		if errors.Is(err, ErrMissingInput) {
			r.Log.WithField("client", code).Warn("input files not found, skipping")
			skipped++
			continue
		}
		if err != nil {
			r.Log.WithField("client", code).WithError(err).Error("client failed, skipping")
			skipped++
			continue
		}

		results = append(results, rec)
	}
	return results, skipped
}
