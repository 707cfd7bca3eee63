// Package units converts raw byte counts into human-readable size strings.
package units

import "fmt"

var symbols = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// BytesToHuman formats n using the largest 1024-based unit whose scaled
// value is at least 1, with two decimal places. Values below 1 KB are
// rendered as whole bytes, e.g. "512 B".
func BytesToHuman(n uint64) string {
	for i := len(symbols) - 1; i >= 1; i-- {
		multiplier := uint64(1) << (uint(i) * 10)
		if n >= multiplier {
			return fmt.Sprintf("%.2f %s", float64(n)/float64(multiplier), symbols[i])
		}
	}
	return fmt.Sprintf("%d B", n)
}
