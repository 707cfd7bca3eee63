package sysinfo

import (
	"context"
	"encoding/json"
	"net"
	"sort"
	"testing"
	"time"
)

func testCollector() *Collector {
	c := NewCollector()
	c.window = 50 * time.Millisecond
	return c
}

func collect(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := testCollector().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	return snap
}

func TestCollectSchema(t *testing.T) {
	snap := collect(t)

	if snap.OS == nil {
		t.Error("os must never be null")
	}
	if snap.CPU == nil {
		t.Error("cpu must never be null")
	}
	if snap.Memory == nil {
		t.Error("memory must never be null")
	}
	if snap.Network == nil {
		t.Error("network must never be null")
	}
	if snap.Disks == nil {
		t.Error("disks must be a sequence, possibly empty, never null")
	}
	if snap.Battery != nil {
		if snap.Battery.Percent < 0 || snap.Battery.Percent > 100 {
			t.Errorf("battery percent out of range: %v", snap.Battery.Percent)
		}
	}
}

func TestCollectJSONTopLevelKeys(t *testing.T) {
	snap := collect(t)

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	for _, key := range []string{"os", "cpu", "memory", "disks", "network", "battery"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	if len(m) != 6 {
		t.Errorf("expected exactly 6 top-level keys, got %d", len(m))
	}
}

func TestCollectShapeIdempotent(t *testing.T) {
	c := testCollector()

	first, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("first Collect failed: %v", err)
	}
	second, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("second Collect failed: %v", err)
	}

	a, b := keySet(t, first), keySet(t, second)
	if len(a) != len(b) {
		t.Fatalf("key sets differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("key mismatch: %q vs %q", a[i], b[i])
		}
	}
}

func keySet(t *testing.T, snap *Snapshot) []string {
	t.Helper()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestCPUPercentages(t *testing.T) {
	snap := collect(t)
	cpu := snap.CPU

	if cpu.TotalUsagePercent != nil {
		if *cpu.TotalUsagePercent < 0 || *cpu.TotalUsagePercent > 100 {
			t.Errorf("total usage out of range: %v", *cpu.TotalUsagePercent)
		}
	}
	for i, p := range cpu.PerCoreUsagePercent {
		if p < 0 || p > 100 {
			t.Errorf("core %d usage out of range: %v", i, p)
		}
	}
	if cpu.TotalUsagePercent != nil && cpu.PerCoreUsagePercent == nil {
		t.Error("total and per-core usage come from one sampling pass; both or neither")
	}
}

func TestMemoryPercentages(t *testing.T) {
	snap := collect(t)
	m := snap.Memory

	if m.Percent < 0 || m.Percent > 100 {
		t.Errorf("memory percent out of range: %v", m.Percent)
	}
	if m.SwapPercent < 0 || m.SwapPercent > 100 {
		t.Errorf("swap percent out of range: %v", m.SwapPercent)
	}
	for _, s := range []string{m.Total, m.Available, m.Used, m.Free, m.SwapTotal, m.SwapUsed, m.SwapFree} {
		if s == "" {
			t.Error("memory size strings must never be empty")
		}
	}
}

func TestDiskEntries(t *testing.T) {
	snap := collect(t)

	for _, d := range snap.Disks {
		if d.Mountpoint == "" {
			t.Error("partition without a mountpoint")
		}
		// Usage leaves are all-or-nothing per partition.
		hasUsage := d.Total != nil
		if (d.Used != nil) != hasUsage || (d.Free != nil) != hasUsage || (d.Percent != nil) != hasUsage {
			t.Errorf("partition %s has partially populated usage", d.Mountpoint)
		}
		if d.Percent != nil && (*d.Percent < 0 || *d.Percent > 100) {
			t.Errorf("partition %s percent out of range: %v", d.Mountpoint, *d.Percent)
		}
	}
}

func TestPrimaryIP(t *testing.T) {
	snap := collect(t)
	ip := snap.Network.PrimaryIP
	if ip == nil {
		t.Skip("no primary IP on this host")
	}

	parsed := net.ParseIP(*ip)
	if parsed == nil || parsed.To4() == nil {
		t.Fatalf("primary IP %q is not a valid IPv4 address", *ip)
	}
	if *ip == "127.0.0.1" {
		t.Error("primary IP must not be the loopback address")
	}
}

func TestInterfaceBriefs(t *testing.T) {
	snap := collect(t)

	for name, brief := range snap.Network.Interfaces {
		if brief.IPv4 == nil {
			t.Errorf("interface %s: ipv4 list must never be null", name)
		}
		for _, addr := range brief.IPv4 {
			parsed := net.ParseIP(addr)
			if parsed == nil || parsed.To4() == nil {
				t.Errorf("interface %s: %q is not IPv4", name, addr)
			}
		}
	}
}

func TestOSBootTimeFormat(t *testing.T) {
	snap := collect(t)
	if snap.OS.BootTime == nil {
		t.Skip("boot time unavailable")
	}
	if _, err := time.ParseInLocation(bootTimeLayout, *snap.OS.BootTime, time.Local); err != nil {
		t.Errorf("boot_time %q does not match layout: %v", *snap.OS.BootTime, err)
	}
}

func TestCacheSizeParsing(t *testing.T) {
	c := &Collector{attrs: stubAttrs{
		"hw.l1icachesize": "131072",
		"hw.l1dcachesize": "not-a-number",
		"hw.l2cachesize":  "-4096",
	}}

	if got := c.cacheSize("hw.l1icachesize"); got == nil || *got != "128.00 KB" {
		t.Errorf("well-formed cache size not humanized: %v", got)
	}
	if got := c.cacheSize("hw.l1dcachesize"); got != nil {
		t.Errorf("malformed cache size should be null, got %q", *got)
	}
	if got := c.cacheSize("hw.l2cachesize"); got != nil {
		t.Errorf("negative cache size should be null, got %q", *got)
	}
	if got := c.cacheSize("hw.l3cachesize"); got != nil {
		t.Errorf("absent attribute should be null, got %q", *got)
	}
}

// stubAttrs serves canned attribute values.
type stubAttrs map[string]string

func (s stubAttrs) Attribute(key string) *string {
	if v, ok := s[key]; ok {
		return &v
	}
	return nil
}
