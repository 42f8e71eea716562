//go:build !windows

package ansi

// EnableANSI is a no-op outside Windows; terminals there interpret ANSI
// sequences natively.
func EnableANSI() error {
	return nil
}
