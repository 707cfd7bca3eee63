package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/bc-dunia/hostprobe/internal/units"
)

// collectMemory has no degraded mode: if the provider cannot supply
// virtual memory or swap statistics the host is unreadable and the
// error propagates to the process boundary.
func (c *Collector) collectMemory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return &MemoryInfo{
		Total:       units.BytesToHuman(vm.Total),
		Available:   units.BytesToHuman(vm.Available),
		Used:        units.BytesToHuman(vm.Used),
		Free:        units.BytesToHuman(vm.Free),
		Percent:     round1(vm.UsedPercent),
		SwapTotal:   units.BytesToHuman(sm.Total),
		SwapUsed:    units.BytesToHuman(sm.Used),
		SwapFree:    units.BytesToHuman(sm.Free),
		SwapPercent: round1(sm.UsedPercent),
	}, nil
}
