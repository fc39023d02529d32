//nolint:funlen // ok for tests
package processing

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
)

func ts(sec int) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}

func TestJoinResolver_MatchedRunLogs(t *testing.T) {
	events := []model.Event{
		{ID: "e1", TrackID: "t1", Title: "Club race 1"},
		{ID: "e2", TrackID: "t2", Title: "Club race 2"},
		{ID: "e3", Title: "orphaned event"},
	}
	runLogs := []model.RunLog{
		{ID: "r1", EventID: "e1", LapTime: 45.2, Timestamp: ts(1)},
		{ID: "r2", EventID: "e2", LapTime: 44.8, Timestamp: ts(2)},
		{ID: "r3", EventID: "missing", LapTime: 40.0, Timestamp: ts(3)},
		{ID: "r4", LapTime: 41.0, Timestamp: ts(4)},
		{ID: "r5", EventID: "e3", LapTime: 42.0, Timestamp: ts(5)},
		{ID: "r6", EventID: "e1", LapTime: 46.0, Timestamp: ts(6)},
	}
	tests := []struct {
		name    string
		trackID string
		wantIDs []string
	}{
		{name: "track with two matches", trackID: "t1", wantIDs: []string{"r1", "r6"}},
		{name: "other track", trackID: "t2", wantIDs: []string{"r2"}},
		{name: "unknown track", trackID: "nope", wantIDs: []string{}},
		{name: "empty track id never matches orphans", trackID: "", wantIDs: []string{}},
	}
	r := NewJoinResolver(events, runLogs)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.MatchedRunLogs(tt.trackID)
			gotIDs := make([]string, 0, len(got))
			for i := range got {
				gotIDs = append(gotIDs, got[i].ID)
			}
			if diff := cmp.Diff(tt.wantIDs, gotIDs); diff != "" {
				t.Errorf("matched run logs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinResolver_DuplicateEventIDs(t *testing.T) {
	// duplicate ids are a data anomaly; the last occurrence wins
	events := []model.Event{
		{ID: "e1", TrackID: "t1"},
		{ID: "e1", TrackID: "t2"},
	}
	runLogs := []model.RunLog{
		{ID: "r1", EventID: "e1", LapTime: 30, Timestamp: ts(1)},
	}
	r := NewJoinResolver(events, runLogs)
	if got := r.MatchedRunLogs("t1"); len(got) != 0 {
		t.Errorf("expected no matches for t1, got %d", len(got))
	}
	if got := r.MatchedRunLogs("t2"); len(got) != 1 {
		t.Errorf("expected one match for t2, got %d", len(got))
	}
	if got := r.EventCount("t2"); got != 1 {
		t.Errorf("EventCount(t2) = %d, want 1", got)
	}
	if got := r.EventCount("t1"); got != 0 {
		t.Errorf("EventCount(t1) = %d, want 0", got)
	}
}

func TestJoinResolver_DuplicateRunLogIDs(t *testing.T) {
	events := []model.Event{
		{ID: "e1", TrackID: "t1"},
	}
	// r1 appears twice; only the last occurrence may count
	runLogs := []model.RunLog{
		{ID: "r1", EventID: "e1", LapTime: 45.2, Timestamp: ts(1)},
		{ID: "r2", EventID: "e1", LapTime: 44.8, Timestamp: ts(2)},
		{ID: "r1", EventID: "e1", LapTime: 43.0, Timestamp: ts(3)},
	}
	r := NewJoinResolver(events, runLogs)
	got := r.MatchedRunLogs("t1")
	want := []model.RunLog{
		{ID: "r1", EventID: "e1", LapTime: 43.0, Timestamp: ts(3)},
		{ID: "r2", EventID: "e1", LapTime: 44.8, Timestamp: ts(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matched run logs mismatch (-want +got):\n%s", diff)
	}
	if got := r.RunLogsForEvent("e1"); len(got) != 2 {
		t.Errorf("RunLogsForEvent(e1) returned %d entries, want 2", len(got))
	}
}

func TestJoinResolver_EventCount(t *testing.T) {
	events := []model.Event{
		{ID: "e1", TrackID: "t1"},
		{ID: "e2", TrackID: "t1"},
		{ID: "e3", TrackID: "t2"},
		{ID: "e4"}, // orphaned, counts for no track
	}
	r := NewJoinResolver(events, nil)
	tests := []struct {
		trackID string
		want    int
	}{
		{trackID: "t1", want: 2},
		{trackID: "t2", want: 1},
		{trackID: "t3", want: 0},
		{trackID: "", want: 0},
	}
	for _, tt := range tests {
		if got := r.EventCount(tt.trackID); got != tt.want {
			t.Errorf("EventCount(%q) = %d, want %d", tt.trackID, got, tt.want)
		}
	}
}

func TestJoinResolver_RunLogsForEvent(t *testing.T) {
	runLogs := []model.RunLog{
		{ID: "r1", EventID: "e1", LapTime: 30, Timestamp: ts(1)},
		{ID: "r2", EventID: "e2", LapTime: 31, Timestamp: ts(2)},
		{ID: "r3", EventID: "e1", LapTime: 32, Timestamp: ts(3)},
	}
	r := NewJoinResolver(nil, runLogs)
	got := r.RunLogsForEvent("e1")
	if len(got) != 2 || got[0].ID != "r1" || got[1].ID != "r3" {
		t.Errorf("RunLogsForEvent(e1) = %+v, want r1,r3 in input order", got)
	}
	if got := r.RunLogsForEvent("unknown"); len(got) != 0 {
		t.Errorf("RunLogsForEvent(unknown) = %+v, want empty", got)
	}
}
