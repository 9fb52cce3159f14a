package renderdoc

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDurationToSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Duration
		want    uint32
		wantErr bool
	}{
		{
			name:  "zero value",
			input: 0,
			want:  0,
		},
		{
			name:  "whole seconds",
			input: 30 * time.Second,
			want:  30,
		},
		{
			name:  "fraction truncated",
			input: 2999 * time.Millisecond,
			want:  2,
		},
		{
			name:  "max uint32 seconds",
			input: time.Duration(math.MaxUint32) * time.Second,
			want:  math.MaxUint32,
		},
		{
			name:    "overflow value",
			input:   time.Duration(math.MaxUint32+1) * time.Second,
			wantErr: true,
		},
		{
			name:    "negative value",
			input:   -time.Nanosecond,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := durationToSeconds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("durationToSeconds(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOptionValueOutOfRange) {
				t.Errorf("durationToSeconds(%v) error = %v, want ErrOptionValueOutOfRange", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("durationToSeconds(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSecondsToDuration(t *testing.T) {
	if got := secondsToDuration(5); got != 5*time.Second {
		t.Errorf("secondsToDuration(5) = %v, want 5s", got)
	}
}
