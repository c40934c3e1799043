package models

import "testing"

func TestSeasonSnapshotFinished(t *testing.T) {
	fixture := []Round{{Number: 1}, {Number: 2}, {Number: 3}}

	tests := []struct {
		name         string
		currentRound int
		want         bool
	}{
		{"first round pending", 1, false},
		{"last round pending", 3, false},
		{"all rounds played", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &SeasonSnapshot{CurrentRound: tt.currentRound, Fixture: fixture}
			if got := snap.Finished(); got != tt.want {
				t.Errorf("Finished() = %v, want %v", got, tt.want)
			}
			if got := snap.TotalRounds(); got != 3 {
				t.Errorf("TotalRounds() = %d, want 3", got)
			}
		})
	}
}
