package store

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ID generation modes.
const (
	IDModeUUID      = "uuid"
	IDModeTimestamp = "timestamp"
)

// IDGenerator assigns opaque string identifiers at record creation time.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs. This is the default: unlike the
// legacy timestamp format it cannot collide under rapid successive creation.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// TimestampGenerator reproduces the legacy id format: the creation time as
// a stringified millisecond epoch. Two records created within the same
// millisecond share an id; callers opting into this mode accept that.
type TimestampGenerator struct {
	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

func (g TimestampGenerator) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// NewIDGenerator returns the generator for the configured mode. Unknown
// modes fall back to UUIDs.
func NewIDGenerator(mode string) IDGenerator {
	if mode == IDModeTimestamp {
		return TimestampGenerator{}
	}
	return UUIDGenerator{}
}
