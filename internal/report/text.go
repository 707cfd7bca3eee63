package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

// kvWidth right-aligns the key column of every report line.
const kvWidth = 24

// WriteText prints the sectioned human-readable report: OS, CPU,
// memory, per-disk, network and, when present, battery. Null leaves
// print as "null"; the battery section is omitted entirely on hosts
// without one.
func WriteText(w io.Writer, snap *sysinfo.Snapshot) {
	writeOS(w, snap.OS)
	writeCPU(w, snap.CPU)
	writeMemory(w, snap.Memory)
	writeDisks(w, snap.Disks)
	writeNetwork(w, snap.Network)
	if snap.Battery != nil {
		writeBattery(w, snap.Battery)
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", utf8.RuneCountInString(title)))
}

func kv(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%*s: %v\n", kvWidth, key, value)
}

// display renders nullable leaves the way the JSON presenter does.
func display[T any](p *T) any {
	if p == nil {
		return "null"
	}
	return *p
}

func writeOS(w io.Writer, o *sysinfo.OSInfo) {
	section(w, "操作系统")
	kv(w, "system", display(o.System))
	kv(w, "node_name", display(o.NodeName))
	kv(w, "release", display(o.Release))
	kv(w, "version", display(o.Version))
	kv(w, "machine", display(o.Machine))
	kv(w, "processor", display(o.Processor))
	kv(w, "go", display(o.Go))
	kv(w, "boot_time", display(o.BootTime))
}

func writeCPU(w io.Writer, c *sysinfo.CPUInfo) {
	section(w, "CPU 信息")
	kv(w, "brand", display(c.Brand))
	kv(w, "architecture", display(c.Architecture))
	kv(w, "physical_cores", display(c.PhysicalCores))
	kv(w, "total_cores", display(c.TotalCores))
	kv(w, "current_frequency_mhz", display(c.CurrentFrequencyMHz))
	kv(w, "min_frequency_mhz", display(c.MinFrequencyMHz))
	kv(w, "max_frequency_mhz", display(c.MaxFrequencyMHz))
	kv(w, "total_usage_percent", display(c.TotalUsagePercent))

	// Cache lines appear only where the platform probe produced them.
	caches := []struct {
		key   string
		value *string
	}{
		{"l1i_cache", c.L1ICache},
		{"l1d_cache", c.L1DCache},
		{"l2_cache", c.L2Cache},
		{"l3_cache", c.L3Cache},
	}
	for _, cache := range caches {
		if cache.value != nil {
			kv(w, cache.key, *cache.value)
		}
	}

	for i, usage := range c.PerCoreUsagePercent {
		kv(w, fmt.Sprintf("core_%d_usage_%%", i+1), usage)
	}
}

func writeMemory(w io.Writer, m *sysinfo.MemoryInfo) {
	section(w, "内存")
	kv(w, "total", m.Total)
	kv(w, "available", m.Available)
	kv(w, "used", m.Used)
	kv(w, "free", m.Free)
	kv(w, "percent", m.Percent)
	kv(w, "swap_total", m.SwapTotal)
	kv(w, "swap_used", m.SwapUsed)
	kv(w, "swap_free", m.SwapFree)
	kv(w, "swap_percent", m.SwapPercent)
}

func writeDisks(w io.Writer, disks []sysinfo.DiskInfo) {
	section(w, "磁盘")
	for _, d := range disks {
		kv(w, "device", d.Device)
		kv(w, "mountpoint", d.Mountpoint)
		kv(w, "fstype", d.Fstype)
		kv(w, "total", display(d.Total))
		kv(w, "used", display(d.Used))
		kv(w, "free", display(d.Free))
		kv(w, "percent", display(d.Percent))
		fmt.Fprintln(w)
	}
}

func writeNetwork(w io.Writer, n *sysinfo.NetworkInfo) {
	section(w, "网络")
	kv(w, "hostname", display(n.Hostname))
	kv(w, "primary_ip", display(n.PrimaryIP))

	names := make([]string, 0, len(n.Interfaces))
	for name := range n.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		brief := n.Interfaces[name]
		kv(w, "interface", name)
		kv(w, "  isup", display(brief.IsUp))
		kv(w, "  speed_mbps", display(brief.SpeedMbps))
		kv(w, "  mtu", display(brief.MTU))
		if len(brief.IPv4) > 0 {
			kv(w, "  ipv4", strings.Join(brief.IPv4, ", "))
		}
		fmt.Fprintln(w)
	}
}

func writeBattery(w io.Writer, b *sysinfo.BatteryInfo) {
	section(w, "电池")
	kv(w, "percent", b.Percent)
	kv(w, "plugged", b.Plugged)
	kv(w, "secsleft", display(b.SecsLeft))
}
