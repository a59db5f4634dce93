package nft

import (
	"encoding/binary"
	"sync"
	"time"
)

const clockStorePropertyKey = "WRAPPER:CLOCK:MONOTONIC"

type PropertyStore interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)
}

// Clock hands out strictly increasing timestamps, persisted so that a
// restarted process never goes back in time on the event log.
type Clock struct {
	sync.Mutex
	store PropertyStore
	now   time.Time
}

func NewClock(store PropertyStore) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(clockStorePropertyKey))
	if err != nil {
		return nil, err
	}
	var ts time.Time
	if len(bs) == 8 {
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(bs)))
	}
	clock := new(Clock)
	clock.store = store
	clock.now = ts
	return clock, nil
}

func (c *Clock) Now() (time.Time, error) {
	c.Lock()
	defer c.Unlock()

	now := time.Now()
	if !now.After(c.now) {
		now = c.now.Add(time.Nanosecond)
	}

	val := binary.BigEndian.AppendUint64(nil, uint64(now.UnixNano()))
	err := c.store.WriteProperty([]byte(clockStorePropertyKey), val)
	if err != nil {
		return time.Time{}, err
	}
	c.now = now
	return c.now, nil
}
