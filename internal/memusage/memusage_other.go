//go:build !linux && !darwin

package memusage

import "errors"

// PeakRSS is unavailable on this platform.
func PeakRSS() (int64, error) {
	return 0, errors.ErrUnsupported
}
