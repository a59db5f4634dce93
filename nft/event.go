package nft

import (
	"fmt"
	"strings"
	"time"

	"github.com/fox-one/mixin-sdk-go"
)

const (
	EventOwnershipTransferred = "OwnershipTransferred"
	EventAllowedTokenAdded    = "AllowedTokenAdded"
	EventAllowedTokenRemoved  = "AllowedTokenRemoved"
	EventRouterUpdated        = "UniswapRouterAddressUpdated"
	EventTransfer             = "Transfer"
	EventApproval             = "Approval"
	EventApprovalForAll       = "ApprovalForAll"
)

// fields are key value pairs, the event id is derived from all of them so
// replaying the same transition at the same instant yields the same id
func buildEvent(ts time.Time, name string, fields ...string) *Event {
	if len(fields)%2 != 0 {
		panic(name)
	}
	evt := &Event{
		Name:      name,
		Fields:    make(map[string]string, len(fields)/2),
		CreatedAt: ts,
	}
	for i := 0; i < len(fields); i += 2 {
		evt.Fields[fields[i]] = fields[i+1]
	}
	seed := fmt.Sprintf("%d:%s", ts.UnixNano(), strings.Join(fields, ":"))
	evt.ID = mixin.UniqueConversationID(name, seed)
	return evt
}

func (w *Wrapper) newEvent(name string, fields ...string) (*Event, error) {
	ts, err := w.clock.Now()
	if err != nil {
		return nil, err
	}
	return buildEvent(ts, name, fields...), nil
}
