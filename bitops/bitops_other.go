//go:build !amd64

package bitops

func hardware() (Manipulator, bool) { return nil, false }
