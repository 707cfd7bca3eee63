//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const powerSupplyPath = "/sys/class/power_supply"

// collectBattery reads the first battery under the power supply class.
// Hosts without a battery and hosts where the sysfs read fails are
// treated identically: nil, no error.
func (c *Collector) collectBattery() *BatteryInfo {
	entries, err := os.ReadDir(powerSupplyPath)
	if err != nil {
		return nil
	}

	for _, e := range entries {
		dir := filepath.Join(powerSupplyPath, e.Name())
		if kind, ok := readSysfsString(filepath.Join(dir, "type")); !ok || kind != "Battery" {
			continue
		}
		return readBattery(dir)
	}
	return nil
}

func readBattery(dir string) *BatteryInfo {
	percent, ok := readSysfsUint(filepath.Join(dir, "capacity"))
	if !ok {
		return nil
	}

	status, _ := readSysfsString(filepath.Join(dir, "status"))
	info := &BatteryInfo{
		Percent: float64(percent),
		Plugged: status != "Discharging",
	}

	// Runtime estimate only makes sense while draining; derive it from
	// the instantaneous draw when sysfs exposes it.
	if status == "Discharging" {
		if secs, ok := drainSeconds(dir); ok {
			info.SecsLeft = ptr(secs)
		}
	}
	return info
}

// drainSeconds estimates seconds until empty, preferring the energy
// (µWh / µW) files and falling back to the charge (µAh / µA) pair.
func drainSeconds(dir string) (int64, bool) {
	pairs := [][2]string{
		{"energy_now", "power_now"},
		{"charge_now", "current_now"},
	}
	for _, pair := range pairs {
		remaining, okR := readSysfsUint(filepath.Join(dir, pair[0]))
		rate, okD := readSysfsUint(filepath.Join(dir, pair[1]))
		if okR && okD && rate > 0 {
			return int64(remaining * 3600 / rate), true
		}
	}
	return 0, false
}

func readSysfsString(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func readSysfsUint(path string) (uint64, bool) {
	s, ok := readSysfsString(path)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
