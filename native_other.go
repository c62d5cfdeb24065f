//go:build !unix && !windows

package httpcore

import "syscall"

var errnoCategories = map[syscall.Errno]Category{}
