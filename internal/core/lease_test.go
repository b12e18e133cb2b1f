package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaseStatusOf(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		active    bool
		superuser bool
		expiresAt time.Time
		want      LeaseStatus
	}{
		{
			name:      "active within window",
			active:    true,
			expiresAt: now.Add(24 * time.Hour),
			want:      LeaseActive,
		},
		{
			name:      "expired wins over active flag",
			active:    true,
			expiresAt: now.Add(-time.Minute),
			want:      LeaseExpired,
		},
		{
			name:      "inactive within window",
			active:    false,
			expiresAt: now.Add(24 * time.Hour),
			want:      LeaseInactive,
		},
		{
			// once the lapse is persisted the tenant reads as inactive
			name:      "expired and already deactivated classifies as inactive",
			active:    false,
			expiresAt: now.Add(-time.Minute),
			want:      LeaseInactive,
		},
		{
			name:      "superuser never expires",
			active:    true,
			superuser: true,
			expiresAt: now.Add(-365 * 24 * time.Hour),
			want:      LeaseActive,
		},
		{
			name:      "deactivated superuser is inactive, not expired",
			active:    false,
			superuser: true,
			expiresAt: now.Add(-time.Minute),
			want:      LeaseInactive,
		},
		{
			name:      "boundary instant is still active",
			active:    true,
			expiresAt: now,
			want:      LeaseActive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeaseStatusOf(tt.active, tt.superuser, tt.expiresAt, now)
			assert.Equal(t, tt.want, got)
		})
	}
}
