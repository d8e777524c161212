package connection

import (
	"context"
	"time"

	"github.com/benedict-erwin/soc-dashboard/pkg/database"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Opener opens the database session to probe
type Opener func(ctx context.Context) (*database.Session, error)

// Status is the outcome of one connectivity probe
type Status struct {
	Status       string    `json:"status"`
	Database     string    `json:"database,omitempty"`
	Version      string    `json:"version,omitempty"`
	Tables       []string  `json:"tables,omitempty"`
	ResponseTime string    `json:"response_time"`
	QueryTime    string    `json:"query_time,omitempty"`
	LastCheck    time.Time `json:"last_check"`
	Error        string    `json:"error,omitempty"`
}

// Check connects, reads server info and the table list, then disconnects.
// ResponseTime covers connect plus queries; QueryTime only the queries.
func Check(ctx context.Context, open Opener) *Status {
	start := time.Now()

	session, err := open(ctx)
	if err != nil {
		return &Status{
			Status:       StatusUnhealthy,
			ResponseTime: time.Since(start).String(),
			LastCheck:    utils.Now(),
			Error:        err.Error(),
		}
	}
	defer session.Close()

	info, err := session.Info(ctx)
	responseTime := time.Since(start)
	if err != nil {
		return &Status{
			Status:       StatusUnhealthy,
			ResponseTime: responseTime.String(),
			LastCheck:    utils.Now(),
			Error:        err.Error(),
		}
	}

	return &Status{
		Status:       StatusHealthy,
		Database:     info.Database,
		Version:      info.Version,
		Tables:       info.Tables,
		ResponseTime: responseTime.String(),
		QueryTime:    info.ResponseTime.String(),
		LastCheck:    utils.Now(),
	}
}
