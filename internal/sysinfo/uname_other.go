//go:build !linux && !darwin

package sysinfo

type utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

func uname() *utsname {
	return nil
}
