//go:build alpha64

package alphabet

const (
	size = 64
	bits = 6
)
