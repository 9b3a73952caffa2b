package models

import (
	"errors"
	"fmt"
	"strings"
)

// TransportMode is the closed set of travel modes the engines know about.
type TransportMode string

const (
	ModeBicycle TransportMode = "bicycle"
	ModeCar     TransportMode = "car"
	ModeBus     TransportMode = "bus"
	ModeTruck   TransportMode = "truck"
)

// ErrUnknownMode signals a mode string outside the enumeration.
var ErrUnknownMode = errors.New("unknown transport mode")

// AllModes returns every mode in declaration order. Comparison entries with
// equal emissions keep this order.
func AllModes() []TransportMode {
	return []TransportMode{ModeBicycle, ModeCar, ModeBus, ModeTruck}
}

// ParseMode validates an external mode string against the enumeration.
func ParseMode(s string) (TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bicycle":
		return ModeBicycle, nil
	case "car":
		return ModeCar, nil
	case "bus":
		return ModeBus, nil
	case "truck":
		return ModeTruck, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m TransportMode) String() string {
	return string(m)
}
