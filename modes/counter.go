package modes

// counter is a big-endian unsigned integer occupying the half of a
// block not used by the CTR nonce. It increments by one per keystream
// block and wraps on overflow.
type counter struct {
	bytes []byte
}

func newCounter(size int) *counter {
	return &counter{bytes: make([]byte, size)}
}

func (c *counter) increment() {
	for i := len(c.bytes) - 1; i >= 0; i-- {
		c.bytes[i]++
		if c.bytes[i] != 0 {
			break
		}
	}
}
