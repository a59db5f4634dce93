package nft

import (
	"math/big"
	"time"

	mixincrypto "github.com/MixinNetwork/mixin/crypto"
	"github.com/ethereum/go-ethereum/common"
)

type Store interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)

	WriteContract(c *Contract, evt *Event) error
	UpdateContract(c *Contract, evt *Event) error
	ReadContract() (*Contract, error)

	WriteTokenAllowances(tokens []common.Address, allowed bool, evts []*Event) error
	ReadTokenAllowance(token common.Address) (bool, error)
	ListAllowedTokens(limit int) ([]common.Address, error)

	WriteMintToken(tok *Token, dep *Deposit, evt *Event) error
	ReadMintToken(id *big.Int) (*Token, error)
	ReadDeposit(id *big.Int) (*Deposit, error)
	ReadBalance(owner common.Address) (uint64, error)

	WriteTokenApproval(tok *Token, evt *Event) error
	WriteTokenTransfer(tok *Token, from common.Address, evt *Event) error
	WriteOperatorApproval(owner, operator common.Address, approved bool, evt *Event) error
	ReadOperatorApproval(owner, operator common.Address) (bool, error)

	ListEvents(offset time.Time, limit int) ([]*Event, error)
}

// Contract is the deployed wrapper configuration, a single record per store.
type Contract struct {
	Address   common.Address
	Name      string
	Symbol    string
	Owner     common.Address
	Router    common.Address
	CreatedAt time.Time
}

type Token struct {
	ID        *big.Int
	Owner     common.Address
	Approved  common.Address
	CreatedAt time.Time
}

// Deposit is the bundle of fungible tokens claimed by a minted identifier.
type Deposit struct {
	ID        *big.Int
	Minter    common.Address
	Tokens    []common.Address
	Amounts   []*big.Int
	Hash      mixincrypto.Hash
	CreatedAt time.Time
}

type Event struct {
	ID        string
	Name      string
	Fields    map[string]string
	CreatedAt time.Time
}
