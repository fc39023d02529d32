package processing

import (
	"fmt"
	"math"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
)

// ValidationError signals a malformed input collection. This is distinct
// from data anomalies (orphaned references, invalid lap values) which are
// expected and handled by silent exclusion.
type ValidationError struct {
	Collection string
	Index      int
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record in %s[%d]: %s",
		e.Collection, e.Index, e.Reason)
}

func validateCollections(cols Collections) error {
	for i := range cols.Events {
		if cols.Events[i].ID == "" {
			return &ValidationError{
				Collection: "events", Index: i, Reason: "missing id",
			}
		}
	}
	for i := range cols.RunLogs {
		if cols.RunLogs[i].ID == "" {
			return &ValidationError{
				Collection: "runLogs", Index: i, Reason: "missing id",
			}
		}
	}
	return nil
}

// validLap reports whether a lap time counts for aggregation.
// Zero, negative and non-finite values stem from legacy or malformed rows
// and are excluded everywhere (KPIs, trend series, car usage).
func validLap(r *model.RunLog) bool {
	return r.LapTime > 0 && !math.IsInf(r.LapTime, 0) && !math.IsNaN(r.LapTime)
}
