//go:build darwin

package sysinfo

import (
	"strconv"
	"strings"

	"github.com/bc-dunia/hostprobe/internal/platform"
)

// collectBattery parses pmset output. Desktops report no battery line;
// that and any pmset failure both yield nil.
func (c *Collector) collectBattery() *BatteryInfo {
	out := platform.RunCommand("pmset", "-g", "batt")
	if out == nil {
		return nil
	}
	return parsePmset(*out)
}

// parsePmset extracts percent, plugged state and the remaining-time
// estimate from "pmset -g batt" output, e.g.:
//
//	Now drawing from 'Battery Power'
//	-InternalBattery-0 (id=1234)	95%; discharging; 5:23 remaining present: true
func parsePmset(out string) *BatteryInfo {
	plugged := strings.Contains(out, "'AC Power'")

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[i+1:]
		}

		fields := strings.Split(line, ";")
		if len(fields) == 0 {
			return nil
		}
		percent, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(fields[0]), "%"), 64)
		if err != nil {
			return nil
		}

		info := &BatteryInfo{Percent: percent, Plugged: plugged}
		if len(fields) >= 3 {
			info.SecsLeft = parseRemaining(fields[2])
		}
		return info
	}
	return nil
}

// parseRemaining turns "5:23 remaining ..." into seconds; "(no
// estimate)" and unparseable values are null.
func parseRemaining(field string) *int64 {
	words := strings.Fields(strings.TrimSpace(field))
	if len(words) == 0 {
		return nil
	}
	parts := strings.Split(words[0], ":")
	if len(parts) != 2 {
		return nil
	}
	hours, errH := strconv.ParseInt(parts[0], 10, 64)
	minutes, errM := strconv.ParseInt(parts[1], 10, 64)
	if errH != nil || errM != nil {
		return nil
	}
	secs := (hours*60 + minutes) * 60
	return &secs
}
