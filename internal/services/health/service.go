package health

import (
	"context"
	"database/sql"
	"time"
)

// Component describes how one backing dependency is currently served.
type Component struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// Status is the payload returned by the health endpoint.
type Status struct {
	OK         bool        `json:"ok"`
	Components []Component `json:"components"`
	Database   string      `json:"database,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB          *sql.DB
	Components  []Component
	PingTimeout time.Duration
}

// NewService constructs a new health service.
func NewService(db *sql.DB, components ...Component) *Service {
	return &Service{DB: db, Components: components, PingTimeout: 2 * time.Second}
}

// Status reports the configured components and, when a database is attached, whether it answers.
func (s *Service) Status(ctx context.Context) Status {
	out := Status{OK: true, Components: append([]Component{}, s.Components...)}
	if s.DB == nil {
		return out
	}
	timeout := s.PingTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		out.OK = false
		out.Database = "unreachable"
		return out
	}
	out.Database = "ok"
	return out
}
