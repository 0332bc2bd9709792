//go:build linux || darwin

package memusage

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PeakRSS reports the process's peak resident set size in kilobytes, as
// returned by getrusage(2). Darwin reports the value in bytes and is
// normalized here.
func PeakRSS() (int64, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0, err
	}
	peak := int64(usage.Maxrss)
	if runtime.GOOS == "darwin" {
		peak /= 1024
	}
	return peak, nil
}
