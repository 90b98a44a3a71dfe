package entropy

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultIIORoot is where Linux exposes industrial-I/O ADC devices.
const DefaultIIORoot = "/sys/bus/iio/devices"

// IIOChannel reads a raw ADC voltage channel through Linux IIO sysfs.
// Failed reads return 0.
type IIOChannel struct {
	path string
}

// OpenIIO locates in_voltage<index>_raw of device under root. An empty root
// uses DefaultIIORoot.
func OpenIIO(root, device string, index int) (*IIOChannel, error) {
	if index < 0 {
		return nil, fmt.Errorf("entropy: channel index must be >= 0: %d", index)
	}
	if root == "" {
		root = DefaultIIORoot
	}

	path := filepath.Join(root, device, fmt.Sprintf("in_voltage%d_raw", index))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("entropy: open channel %d: %w", index, err)
	}

	return &IIOChannel{path: path}, nil
}

// Path returns the sysfs attribute being read.
func (c *IIOChannel) Path() string {
	return c.path
}

// Read returns the current raw conversion result.
func (c *IIOChannel) Read() uint16 {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return 0
	}

	v, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 16)
	if err != nil {
		return 0
	}

	return uint16(v)
}

// JitterChannel derives readings from scheduling jitter of the monotonic
// clock. It is a fallback for hosts without an ADC.
type JitterChannel struct{}

// Read spins briefly and returns the low bits of the elapsed nanoseconds.
func (JitterChannel) Read() uint16 {
	start := time.Now()
	var acc uint32
	for i := range 64 {
		acc = acc*31 + uint32(i)
	}

	return uint16(time.Since(start).Nanoseconds()) ^ uint16(acc)
}

// ConstChannel always returns the same reading.
type ConstChannel uint16

// Read returns c.
func (c ConstChannel) Read() uint16 { return uint16(c) }
