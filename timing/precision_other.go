//go:build !linux

package timing

// PlatformPrecision returns a no-op backend; the OS sleep granularity is used as is
func PlatformPrecision() Precision {
	return noopPrecision{}
}
