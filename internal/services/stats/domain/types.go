// Package domain defines the stats service types
package domain

import (
	"time"

	"guidecheck/internal/core/confusion"
)

// Window bounds a stats query. Zero times mean unbounded; empty UserID
// means all users
type Window struct {
	Since  time.Time `json:"since,omitempty"`
	Until  time.Time `json:"until,omitempty"`
	UserID string    `json:"user_id,omitempty"`
}

// Summary is the aggregate view returned to callers: the raw counts plus
// the derived percentage metrics
type Summary struct {
	Window  Window            `json:"window"`
	Counts  confusion.Counts  `json:"counts"`
	Metrics confusion.Metrics `json:"metrics"`
}
