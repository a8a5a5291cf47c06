package port

import (
	"fmt"
	"strconv"
	"strings"
)

// Valid TCP port range.
const (
	MinPort = 1
	MaxPort = 65535
)

// Parse converts s to a port number and checks its range.
func Parse(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	if err := Validate(p); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks that p is a usable TCP port.
func Validate(p int) error {
	if p < MinPort || p > MaxPort {
		return fmt.Errorf("port %d out of range %d-%d", p, MinPort, MaxPort)
	}
	return nil
}

// ParseOffset converts s to an offset. An empty string is a zero offset.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	off, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port offset %q", s)
	}
	return off, nil
}

// Apply shifts p by offset.
func Apply(p, offset int) (int, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	shifted := p + offset
	if err := Validate(shifted); err != nil {
		return 0, fmt.Errorf("port %d with offset %d: %w", p, offset, err)
	}
	return shifted, nil
}
