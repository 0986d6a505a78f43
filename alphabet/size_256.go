//go:build !alpha64

package alphabet

const (
	size = 256
	bits = 8
)
