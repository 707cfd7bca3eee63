package sysinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/bc-dunia/hostprobe/internal/units"
)

// collectDisks enumerates real (non-pseudo) partitions in the order
// the OS reports them. A partition whose usage query fails keeps its
// identifying fields and carries null usage leaves.
func (c *Collector) collectDisks(ctx context.Context) []DiskInfo {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return []DiskInfo{}
	}

	disks := make([]DiskInfo, 0, len(parts))
	for _, p := range parts {
		d := DiskInfo{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Opts:       strings.Join(p.Opts, ","),
		}
		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			d.Total = ptr(units.BytesToHuman(usage.Total))
			d.Used = ptr(units.BytesToHuman(usage.Used))
			d.Free = ptr(units.BytesToHuman(usage.Free))
			d.Percent = ptr(round1(usage.UsedPercent))
		}
		disks = append(disks, d)
	}
	return disks
}
