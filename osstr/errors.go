package osstr

import "errors"

// ErrNUL indicates an OS string that cannot be passed as a C string
var ErrNUL = errors.New("osstr: string contains NUL byte")
