// Package sysinfo aggregates local host telemetry into a point-in-time
// snapshot. Each facet is gathered by its own collector; individual
// sub-probe failures surface as null leaves, never as errors, so the
// snapshot schema is stable across hosts and failure modes.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/bc-dunia/hostprobe/internal/config"
	"github.com/bc-dunia/hostprobe/internal/platform"
)

// Snapshot is one immutable aggregate of all host facets. A fresh
// snapshot is allocated on every Collect call; nothing is cached.
type Snapshot struct {
	OS      *OSInfo      `json:"os"`
	CPU     *CPUInfo     `json:"cpu"`
	Memory  *MemoryInfo  `json:"memory"`
	Disks   []DiskInfo   `json:"disks"`
	Network *NetworkInfo `json:"network"`
	Battery *BatteryInfo `json:"battery"`
}

// OSInfo holds uname-derived fields plus the boot timestamp and the Go
// runtime version.
type OSInfo struct {
	System    *string `json:"system"`
	NodeName  *string `json:"node_name"`
	Release   *string `json:"release"`
	Version   *string `json:"version"`
	Machine   *string `json:"machine"`
	Processor *string `json:"processor"`
	Go        *string `json:"go"`
	BootTime  *string `json:"boot_time"`
}

// CPUInfo holds topology, frequency, utilization and cache fields.
// Frequency and cache leaves are null wherever the OS does not expose
// them.
type CPUInfo struct {
	Architecture        *string   `json:"architecture"`
	PhysicalCores       *int      `json:"physical_cores"`
	TotalCores          *int      `json:"total_cores"`
	MaxFrequencyMHz     *float64  `json:"max_frequency_mhz"`
	MinFrequencyMHz     *float64  `json:"min_frequency_mhz"`
	CurrentFrequencyMHz *float64  `json:"current_frequency_mhz"`
	TotalUsagePercent   *float64  `json:"total_usage_percent"`
	PerCoreUsagePercent []float64 `json:"per_core_usage_percent"`
	Brand               *string   `json:"brand"`
	L1ICache            *string   `json:"l1i_cache"`
	L1DCache            *string   `json:"l1d_cache"`
	L2Cache             *string   `json:"l2_cache"`
	L3Cache             *string   `json:"l3_cache"`
}

// MemoryInfo holds virtual memory and swap statistics. Byte quantities
// are humanized size strings; the provider supplying them is assumed
// always available, so none of these leaves are nullable.
type MemoryInfo struct {
	Total       string  `json:"total"`
	Available   string  `json:"available"`
	Used        string  `json:"used"`
	Free        string  `json:"free"`
	Percent     float64 `json:"percent"`
	SwapTotal   string  `json:"swap_total"`
	SwapUsed    string  `json:"swap_used"`
	SwapFree    string  `json:"swap_free"`
	SwapPercent float64 `json:"swap_percent"`
}

// DiskInfo describes one mounted partition. Usage leaves are null when
// the usage query failed (for example an unreachable network mount);
// the identifying fields are always present.
type DiskInfo struct {
	Device     string   `json:"device"`
	Mountpoint string   `json:"mountpoint"`
	Fstype     string   `json:"fstype"`
	Opts       string   `json:"opts"`
	Total      *string  `json:"total"`
	Used       *string  `json:"used"`
	Free       *string  `json:"free"`
	Percent    *float64 `json:"percent"`
}

// NetworkInfo holds the hostname, the best-effort outbound-facing IPv4
// address, and a per-interface brief.
type NetworkInfo struct {
	Hostname   *string                   `json:"hostname"`
	PrimaryIP  *string                   `json:"primary_ip"`
	Interfaces map[string]InterfaceBrief `json:"interfaces"`
}

// InterfaceBrief summarizes one network interface. IPv4 lists only
// IPv4 addresses; link-layer entries are excluded.
type InterfaceBrief struct {
	IsUp      *bool    `json:"isup"`
	SpeedMbps *int64   `json:"speed_mbps"`
	MTU       *int     `json:"mtu"`
	IPv4      []string `json:"ipv4"`
}

// BatteryInfo is present only on hosts with a readable battery sensor.
// SecsLeft is null when the estimate is indeterminate (charging, full,
// or unknown draw).
type BatteryInfo struct {
	Percent  float64 `json:"percent"`
	Plugged  bool    `json:"plugged"`
	SecsLeft *int64  `json:"secsleft"`
}

// Collector gathers snapshots. The platform attribute source is chosen
// once at construction.
type Collector struct {
	attrs  platform.AttributeSource
	window time.Duration
}

// NewCollector returns a Collector using the attribute source for the
// current OS and the default CPU sampling window.
func NewCollector() *Collector {
	return &Collector{
		attrs:  platform.NewSource(),
		window: config.CPUSampleWindow,
	}
}

// Collect gathers every facet exactly once, in fixed order, and
// returns the combined snapshot. The only error path is a fatal
// failure of the memory provider; everything else degrades to null
// leaves inside the facet collectors.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	snap.OS = c.collectOS(ctx)
	snap.CPU = c.collectCPU(ctx)

	memory, err := c.collectMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading memory statistics: %w", err)
	}
	snap.Memory = memory

	snap.Disks = c.collectDisks(ctx)
	snap.Network = c.collectNetwork(ctx)
	snap.Battery = c.collectBattery()

	return snap, nil
}

func ptr[T any](v T) *T {
	return &v
}

// round1 trims provider percentages to one decimal place.
func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
