//go:build unix

package osstr

import "golang.org/x/sys/unix"

// CString returns o as a NUL-terminated byte string for system calls.
// It fails with ErrNUL if o contains a NUL byte.
func CString(o OsStr) (*byte, error) {
	p, err := unix.BytePtrFromString(string(o))
	if err != nil {
		return nil, ErrNUL
	}
	return p, nil
}

// FromCString copies the NUL-terminated string at p. A nil p yields an
// empty OsStr.
func FromCString(p *byte) OsStr {
	return OsStr(unix.BytePtrToString(p))
}
