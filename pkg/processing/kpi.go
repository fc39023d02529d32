package processing

import "github.com/rcgarage/rcprogram-manager-go/pkg/model"

type kpi struct {
	bestLap    *float64
	avgLap     *float64
	runCount   int
	eventCount int
}

// aggregateKPI reduces the matched run logs to the dashboard KPIs.
// Only valid laps count; when none exist best/avg stay nil so callers can
// tell "no data" from a numeric zero.
func aggregateKPI(matched []model.RunLog, eventCount int) kpi {
	ret := kpi{eventCount: eventCount}
	var sum, best float64
	for i := range matched {
		if !validLap(&matched[i]) {
			continue
		}
		lap := matched[i].LapTime
		if ret.runCount == 0 || lap < best {
			best = lap
		}
		sum += lap
		ret.runCount++
	}
	if ret.runCount > 0 {
		avg := sum / float64(ret.runCount)
		ret.bestLap = &best
		ret.avgLap = &avg
	}
	return ret
}
