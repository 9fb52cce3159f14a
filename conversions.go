package renderdoc

import (
	"fmt"
	"math"
	"time"
)

// durationToSeconds converts d to whole seconds for a uint32 option.
// Fractions of a second are truncated.
//
// gosec G115: Integer overflow check
func durationToSeconds(d time.Duration) (uint32, error) {
	if d < 0 {
		return 0, fmt.Errorf("%w: negative duration %s", ErrOptionValueOutOfRange, d)
	}
	secs := int64(d / time.Second)
	if secs > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s exceeds %d seconds", ErrOptionValueOutOfRange, d, uint32(math.MaxUint32))
	}
	return uint32(secs), nil
}

func secondsToDuration(secs uint32) time.Duration {
	return time.Duration(secs) * time.Second
}
