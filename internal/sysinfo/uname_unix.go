//go:build linux || darwin

package sysinfo

import "golang.org/x/sys/unix"

type utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

func uname() *utsname {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil
	}
	return &utsname{
		Sysname:  cstring(u.Sysname[:]),
		Nodename: cstring(u.Nodename[:]),
		Release:  cstring(u.Release[:]),
		Version:  cstring(u.Version[:]),
		Machine:  cstring(u.Machine[:]),
	}
}

// cstring converts a NUL-terminated byte buffer to a Go string.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
