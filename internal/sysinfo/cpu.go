package sysinfo

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/bc-dunia/hostprobe/internal/units"
)

func (c *Collector) collectCPU(ctx context.Context) *CPUInfo {
	info := &CPUInfo{}

	if u := uname(); u != nil && u.Machine != "" {
		info.Architecture = ptr(u.Machine)
	} else {
		info.Architecture = ptr(runtime.GOARCH)
	}

	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = ptr(n)
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.TotalCores = ptr(n)
	}

	info.CurrentFrequencyMHz, info.MinFrequencyMHz, info.MaxFrequencyMHz = c.frequencies(ctx)

	// One merged sampling pass covers both the total and the per-core
	// utilization; the total is the mean of the per-core values.
	if percents, err := cpu.PercentWithContext(ctx, c.window, true); err == nil && len(percents) > 0 {
		perCore := make([]float64, len(percents))
		var sum float64
		for i, p := range percents {
			perCore[i] = round1(p)
			sum += p
		}
		info.PerCoreUsagePercent = perCore
		info.TotalUsagePercent = ptr(round1(sum / float64(len(percents))))
	}

	// Brand: platform attribute first (darwin sysctl), generic provider
	// fields otherwise.
	info.Brand = c.attrs.Attribute("machdep.cpu.brand_string")
	if info.Brand == nil {
		if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
			info.Brand = ptr(infos[0].ModelName)
		}
	}

	info.L1ICache = c.cacheSize("hw.l1icachesize")
	info.L1DCache = c.cacheSize("hw.l1dcachesize")
	info.L2Cache = c.cacheSize("hw.l2cachesize")
	info.L3Cache = c.cacheSize("hw.l3cachesize")

	return info
}

// cacheSize humanizes a cache-size attribute when the probe returns a
// well-formed non-negative integer string.
func (c *Collector) cacheSize(key string) *string {
	v := c.attrs.Attribute(key)
	if v == nil {
		return nil
	}
	n, err := strconv.ParseUint(*v, 10, 64)
	if err != nil {
		return nil
	}
	return ptr(units.BytesToHuman(n))
}

// frequencies reports current/min/max core frequency in MHz. Linux
// exposes all three through cpufreq sysfs; elsewhere only the current
// frequency is available, from the provider's CPU info.
func (c *Collector) frequencies(ctx context.Context) (cur, lo, hi *float64) {
	cur = readCPUFreqKHz("/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq")
	lo = readCPUFreqKHz("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_min_freq")
	hi = readCPUFreqKHz("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")

	if cur == nil {
		if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
			cur = ptr(round1(infos[0].Mhz))
		}
	}
	return cur, lo, hi
}

func readCPUFreqKHz(path string) *float64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || khz <= 0 {
		return nil
	}
	return ptr(round1(khz / 1000))
}
