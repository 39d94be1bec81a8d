package entities

import "time"

// AccessLogEntry records one public lookup attempt. The trail is append-only:
// the protocol writes it and never reads it back.
type AccessLogEntry struct {
	ID        string    `json:"id"`
	NumeroOS  int       `json:"numero_os"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}
