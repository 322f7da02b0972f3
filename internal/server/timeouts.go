package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second

	// dashboardClientTimeout bounds the dashboard's call back into the leaders API.
	dashboardClientTimeout = 20 * time.Second
	redisPingTimeout       = 3 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
