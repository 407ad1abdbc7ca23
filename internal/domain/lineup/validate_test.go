package lineup

import (
	"errors"
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

func TestLineup_Validate(t *testing.T) {
	roster := map[string]struct{}{"p1": {}, "p2": {}, "p3": {}}

	tests := []struct {
		name      string
		build     func() Lineup
		sport     sport.Sport
		targetErr error
	}{
		{
			name: "valid hockey",
			build: func() Lineup {
				return NewEmpty(sport.Hockey).
					Assign(SlotRef{Group: GroupForwardLines, Position: SlotC}, "p1").
					Assign(SlotRef{Group: GroupGoalies}, "p2")
			},
			sport: sport.Hockey,
		},
		{
			name:      "sport mismatch",
			build:     func() Lineup { return NewEmpty(sport.Hockey) },
			sport:     sport.Basketball,
			targetErr: ErrSportMismatch,
		},
		{
			name:      "unsupported sport",
			build:     func() Lineup { return NewEmpty(sport.Soccer) },
			sport:     sport.Soccer,
			targetErr: ErrUnsupportedSport,
		},
		{
			name: "duplicate player",
			build: func() Lineup {
				item := NewEmpty(sport.Hockey)
				item.Hockey.ForwardLines[0].LW = "p1"
				item.Hockey.Goalies[0] = "p1"
				return item
			},
			sport:     sport.Hockey,
			targetErr: ErrDuplicateAssignment,
		},
		{
			name: "unknown player",
			build: func() Lineup {
				return NewEmpty(sport.Basketball).Assign(SlotRef{Group: GroupBench, Index: 0}, "ghost")
			},
			sport:     sport.Basketball,
			targetErr: ErrUnknownPlayer,
		},
		{
			name: "too many forward lines",
			build: func() Lineup {
				item := NewEmpty(sport.Hockey)
				item.Hockey.ForwardLines = make([]ForwardLine, 5)
				return item
			},
			sport:     sport.Hockey,
			targetErr: ErrGroupSizeOutOfRange,
		},
		{
			name: "too many starters",
			build: func() Lineup {
				item := NewEmpty(sport.Basketball)
				item.Basketball.Guards = make([]string, 3)
				return item
			},
			sport:     sport.Basketball,
			targetErr: ErrTooManyStarters,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate(tc.sport, roster)
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}
