package sysinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

const bootTimeLayout = "2006-01-02 15:04:05"

func (c *Collector) collectOS(ctx context.Context) *OSInfo {
	info := &OSInfo{Go: ptr(runtime.Version())}

	if u := uname(); u != nil {
		info.System = ptr(u.Sysname)
		info.NodeName = ptr(u.Nodename)
		info.Release = ptr(u.Release)
		info.Version = ptr(u.Version)
		info.Machine = ptr(u.Machine)
		// POSIX utsname carries no processor member; report the machine
		// field, which is what most platforms fall back to anyway.
		info.Processor = ptr(u.Machine)
	} else if hi, err := host.InfoWithContext(ctx); err == nil {
		info.System = ptr(hi.OS)
		info.NodeName = ptr(hi.Hostname)
		info.Release = ptr(hi.KernelVersion)
		info.Version = ptr(hi.PlatformVersion)
		info.Machine = ptr(hi.KernelArch)
		info.Processor = ptr(hi.KernelArch)
	}

	if bt, err := host.BootTimeWithContext(ctx); err == nil {
		info.BootTime = ptr(time.Unix(int64(bt), 0).Format(bootTimeLayout))
	}

	return info
}
