package processing

import "github.com/rcgarage/rcprogram-manager-go/pkg/model"

// JoinResolver holds the in-memory indices needed to join run logs to
// their events and events to their tracks. Indices are built once per
// query; the expected data scale of a hobby tracker does not warrant
// per-track precomputation.
type JoinResolver struct {
	runLogs          []model.RunLog
	eventByID        map[string]model.Event
	runLogsByEventID map[string][]model.RunLog
	eventIDsByTrack  map[string][]string
}

// NewJoinResolver builds the indices in O(E+R). Duplicate ids are a data
// anomaly, not an error; the last occurrence wins.
func NewJoinResolver(events []model.Event, runLogs []model.RunLog) *JoinResolver {
	r := &JoinResolver{
		eventByID:        make(map[string]model.Event, len(events)),
		runLogsByEventID: make(map[string][]model.RunLog, len(events)),
		eventIDsByTrack:  make(map[string][]string),
	}
	for i := range events {
		r.eventByID[events[i].ID] = events[i]
	}
	// index distinct events per track (post-dedup view)
	seen := make(map[string]struct{}, len(r.eventByID))
	for i := range events {
		ev := r.eventByID[events[i].ID]
		if _, ok := seen[ev.ID]; ok {
			continue
		}
		seen[ev.ID] = struct{}{}
		if ev.TrackID != "" {
			r.eventIDsByTrack[ev.TrackID] = append(r.eventIDsByTrack[ev.TrackID], ev.ID)
		}
	}
	// dedup run logs the same way: last occurrence wins, first position kept
	runLogByID := make(map[string]model.RunLog, len(runLogs))
	for i := range runLogs {
		runLogByID[runLogs[i].ID] = runLogs[i]
	}
	r.runLogs = make([]model.RunLog, 0, len(runLogByID))
	seenRuns := make(map[string]struct{}, len(runLogByID))
	for i := range runLogs {
		rl := runLogByID[runLogs[i].ID]
		if _, ok := seenRuns[rl.ID]; ok {
			continue
		}
		seenRuns[rl.ID] = struct{}{}
		r.runLogs = append(r.runLogs, rl)
		if rl.EventID != "" {
			r.runLogsByEventID[rl.EventID] = append(r.runLogsByEventID[rl.EventID], rl)
		}
	}
	return r
}

// MatchedRunLogs returns every run log whose event resolves and belongs to
// trackID, in input order. Run logs with an unknown or empty event id and
// run logs of events on other tracks are excluded; such absence is
// expected (deleted parents, manual edits) and never an error. Orphaned
// events (empty TrackID) contribute to no track, not even to an empty
// trackID query.
func (r *JoinResolver) MatchedRunLogs(trackID string) []model.RunLog {
	matched := make([]model.RunLog, 0, len(r.runLogs))
	for i := range r.runLogs {
		rl := r.runLogs[i]
		if rl.EventID == "" {
			continue
		}
		ev, ok := r.eventByID[rl.EventID]
		if !ok || ev.TrackID == "" || ev.TrackID != trackID {
			continue
		}
		matched = append(matched, rl)
	}
	return matched
}

// RunLogsForEvent returns the run logs referencing eventID in input order.
func (r *JoinResolver) RunLogsForEvent(eventID string) []model.RunLog {
	return r.runLogsByEventID[eventID]
}

// EventCount returns the number of distinct events held at trackID,
// regardless of whether they have any run logs.
func (r *JoinResolver) EventCount(trackID string) int {
	return len(r.eventIDsByTrack[trackID])
}
