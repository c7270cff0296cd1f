package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposalStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from DisposalStatus
		to   DisposalStatus
		want bool
	}{
		{name: "recorded to collected", from: StatusRecorded, to: StatusCollected, want: true},
		{name: "collected to processed", from: StatusCollected, to: StatusProcessed, want: true},
		{name: "processed to completed", from: StatusProcessed, to: StatusCompleted, want: true},
		{name: "no skipping", from: StatusRecorded, to: StatusProcessed, want: false},
		{name: "no going back", from: StatusProcessed, to: StatusCollected, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusRecorded, want: false},
		{name: "no self transition", from: StatusRecorded, to: StatusRecorded, want: false},
		{name: "arbitrary string rejected", from: StatusRecorded, to: DisposalStatus("lost"), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}
}
