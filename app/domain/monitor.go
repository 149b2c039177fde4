package domain

// MonitorStatus mirrors the uptime provider's numeric status codes
type MonitorStatus int

const (
	MonitorStatusPaused   MonitorStatus = 0
	MonitorStatusChecking MonitorStatus = 1
	MonitorStatusUp       MonitorStatus = 2
	MonitorStatusDown     MonitorStatus = 9
)

// Monitor is a flattened view of an uptime monitor as returned by the
// monitoring provider.
type Monitor struct {
	ID          int64         `json:"id"`
	Name        string        `json:"friendly_name"`
	URL         string        `json:"url"`
	Status      MonitorStatus `json:"status"`
	Type        int           `json:"type"`
	UptimeRatio string        `json:"uptime_ratio"`
	LastCheckAt string        `json:"last_check_at,omitempty"`
}

// IsUp returns true if the monitor last reported up
func (m *Monitor) IsUp() bool {
	return m.Status == MonitorStatusUp
}
