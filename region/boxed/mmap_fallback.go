//go:build !unix && !windows

package boxed

const mapPlatform = "heap"

func mapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapAnon([]byte) error { return nil }
