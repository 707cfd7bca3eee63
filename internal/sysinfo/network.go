package sysinfo

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/bc-dunia/hostprobe/internal/config"
)

func (c *Collector) collectNetwork(ctx context.Context) *NetworkInfo {
	info := &NetworkInfo{Interfaces: map[string]InterfaceBrief{}}

	if hn, err := os.Hostname(); err == nil {
		info.Hostname = ptr(hn)
	}
	info.PrimaryIP = primaryIP()

	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return info
	}
	for _, ifc := range ifaces {
		brief := InterfaceBrief{
			IsUp:      ptr(slices.Contains(ifc.Flags, "up")),
			MTU:       ptr(ifc.MTU),
			SpeedMbps: linkSpeedMbps(ifc.Name),
			IPv4:      []string{},
		}
		for _, addr := range ifc.Addrs {
			ip := addr.Addr
			if i := strings.IndexByte(ip, '/'); i >= 0 {
				ip = ip[:i]
			}
			if parsed := net.ParseIP(ip); parsed != nil && parsed.To4() != nil {
				brief.IPv4 = append(brief.IPv4, ip)
			}
		}
		info.Interfaces[ifc.Name] = brief
	}

	return info
}

// primaryIP finds the outbound-facing non-loopback IPv4 address. A
// connectionless UDP dial lets the OS resolve the local address
// without transmitting anything; the fallback resolves the hostname.
func primaryIP() *string {
	if conn, err := net.Dial("udp", config.OutboundProbeAddr); err == nil {
		defer conn.Close()
		if ua, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			if ip := ua.IP.To4(); ip != nil && !ip.IsLoopback() {
				return ptr(ip.String())
			}
		}
	}

	hn, err := os.Hostname()
	if err != nil {
		return nil
	}
	addrs, err := net.LookupIP(hn)
	if err != nil {
		return nil
	}
	for _, ip := range addrs {
		if v4 := ip.To4(); v4 != nil && !v4.IsLoopback() {
			return ptr(v4.String())
		}
	}
	return nil
}

// linkSpeedMbps reads the interface link speed from sysfs. The file is
// absent on non-Linux systems and reads -1 while the link is down;
// both cases report null.
func linkSpeedMbps(name string) *int64 {
	data, err := os.ReadFile(filepath.Join("/sys/class/net", name, "speed"))
	if err != nil {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
