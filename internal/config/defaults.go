package config

import "time"

// Default configuration constants for collection and probing
const (
	// CPUSampleWindow bounds the blocking CPU utilization sample.
	CPUSampleWindow = 300 * time.Millisecond

	// ProbeTimeout bounds external attribute commands (sysctl, pmset).
	ProbeTimeout = 2 * time.Second

	// OutboundProbeAddr is dialed (UDP, no packets sent) to let the OS
	// pick the outbound-facing local address.
	OutboundProbeAddr = "8.8.8.8:80"

	ServerName    = "host-info"
	ServerVersion = "1.0.0"
)
