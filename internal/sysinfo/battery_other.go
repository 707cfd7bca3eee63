//go:build !linux && !darwin

package sysinfo

func (c *Collector) collectBattery() *BatteryInfo {
	return nil
}
