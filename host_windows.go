//go:build windows

package godbfcp

import "golang.org/x/sys/windows"

var (
	kernel32     = windows.NewLazySystemDLL("kernel32.dll")
	procGetOEMCP = kernel32.NewProc("GetOEMCP")
	procGetACP   = kernel32.NewProc("GetACP")
)

func hostOEMCodePage() int {
	r, _, _ := procGetOEMCP.Call()
	return int(uint32(r))
}

func hostANSICodePage() int {
	r, _, _ := procGetACP.Call()
	return int(uint32(r))
}
