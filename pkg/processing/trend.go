package processing

import (
	"sort"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
)

// UnknownCar is the usage bucket for run logs without a car reference.
// Keeping them in an explicit bucket keeps sum(carUsage) == runCount.
const UnknownCar = "unknown"

type trend struct {
	series   []model.TrendPoint
	carUsage map[string]int
}

// buildTrend produces the chronologically ordered lap series and the
// per-car usage breakdown from the matched run logs. The sort is stable:
// entries with equal timestamps keep their input order, so that rolling
// window computations downstream are deterministic.
func buildTrend(matched []model.RunLog) trend {
	ret := trend{
		series:   make([]model.TrendPoint, 0, len(matched)),
		carUsage: map[string]int{},
	}
	for i := range matched {
		if !validLap(&matched[i]) {
			continue
		}
		rl := matched[i]
		ret.series = append(ret.series, model.TrendPoint{
			Timestamp: rl.Timestamp,
			LapTime:   rl.LapTime,
		})
		carID := rl.CarID
		if carID == "" {
			carID = UnknownCar
		}
		ret.carUsage[carID]++
	}
	sort.SliceStable(ret.series, func(i, j int) bool {
		return ret.series[i].Timestamp.Before(ret.series[j].Timestamp)
	})
	return ret
}
