package store

import (
	"encoding/binary"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

func tsToBytes(ts time.Time) []byte {
	buf := make([]byte, 8)
	d := ts.UnixNano()
	binary.BigEndian.PutUint64(buf, uint64(d))
	return buf
}

// identifiers are keyed by their 32 bytes big endian form so that the
// iteration order is the numeric order
func idToBytes(id *big.Int) []byte {
	return math.PaddedBigBytes(id, 32)
}

func addressKey(prefix string, addrs ...common.Address) []byte {
	key := []byte(prefix)
	for _, a := range addrs {
		key = append(key, a.Bytes()...)
	}
	return key
}

func idKey(prefix string, id *big.Int) []byte {
	return append([]byte(prefix), idToBytes(id)...)
}
