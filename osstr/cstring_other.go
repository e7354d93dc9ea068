//go:build !unix

package osstr

import (
	"bytes"
	"unsafe"
)

// CString returns o as a NUL-terminated byte string.
// It fails with ErrNUL if o contains a NUL byte.
func CString(o OsStr) (*byte, error) {
	if bytes.IndexByte(o, 0) >= 0 {
		return nil, ErrNUL
	}
	b := make([]byte, len(o)+1)
	copy(b, o)
	return &b[0], nil
}

// FromCString copies the NUL-terminated string at p. A nil p yields an
// empty OsStr.
func FromCString(p *byte) OsStr {
	if p == nil {
		return OsStr{}
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return OsStr(bytes.Clone(unsafe.Slice(p, n)))
}
