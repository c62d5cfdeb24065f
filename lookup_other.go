//go:build !linux && !windows && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package httpcore

var lookupCategories = map[int]Category{}
