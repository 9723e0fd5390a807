package commitlog

import "sync/atomic"

type Statistics struct {
	SegmentCount  uint64
	CurrentOffset uint64
	StoredBytes   uint64
}

func (c *commitLog) GetStatistics() Statistics {
	segments := c.snapshot()
	return Statistics{
		CurrentOffset: c.Offset(),
		SegmentCount:  uint64(len(segments)),
		StoredBytes:   atomic.LoadUint64(&c.storedBytes),
	}
}
