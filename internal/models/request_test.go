package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueuedRequest_Eligible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name string
		req  QueuedRequest
		want bool
	}{
		{
			name: "pending without retry timestamp",
			req:  QueuedRequest{Status: RequestStatusPending},
			want: true,
		},
		{
			name: "pending with elapsed retry timestamp",
			req:  QueuedRequest{Status: RequestStatusPending, NextRetryAt: &past},
			want: true,
		},
		{
			name: "pending with future retry timestamp",
			req:  QueuedRequest{Status: RequestStatusPending, NextRetryAt: &future},
			want: false,
		},
		{
			name: "in-flight is never eligible",
			req:  QueuedRequest{Status: RequestStatusInFlight},
			want: false,
		},
		{
			name: "failed is never eligible",
			req:  QueuedRequest{Status: RequestStatusFailed},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Eligible(now))
		})
	}
}

func TestQueuedRequest_Terminal(t *testing.T) {
	assert.False(t, (&QueuedRequest{Status: RequestStatusPending}).Terminal())
	assert.False(t, (&QueuedRequest{Status: RequestStatusInFlight}).Terminal())
	assert.True(t, (&QueuedRequest{Status: RequestStatusFailed}).Terminal())
	assert.True(t, (&QueuedRequest{Status: RequestStatusSucceeded}).Terminal())
}
