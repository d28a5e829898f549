package ids

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

// NewObjectID builds an object identifier from a nanosecond timestamp and a
// short random suffix. Collisions are negligible at realistic request rates.
func NewObjectID() string {
	suffix := ksuid.New().String()
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), suffix[len(suffix)-8:])
}
