package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/agrilotorg/libagrilot-go/account"
)

// MemLedger is an in-process reference ledger. It stands in for the
// external token service in tests and local runs: per-mint supplies,
// per-account balances, and freezable accounts, with every call atomic
// under a single mutex.
type MemLedger struct {
	mu       sync.Mutex
	supplies map[account.ID]uint64
	balances map[account.ID]uint64
	frozen   map[account.ID]bool
}

// NewMemLedger creates an empty ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{
		supplies: make(map[account.ID]uint64),
		balances: make(map[account.ID]uint64),
		frozen:   make(map[account.ID]bool),
	}
}

// CreateMint registers a mint with a fixed total supply.
func (l *MemLedger) CreateMint(mint account.ID, supply uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supplies[mint] = supply
}

// CreateAccount registers an account with an initial balance.
func (l *MemLedger) CreateAccount(acct account.ID, balance uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[acct] = balance
}

// Freeze marks an account so that transfers touching it fail.
func (l *MemLedger) Freeze(acct account.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frozen[acct] = true
}

func (l *MemLedger) Transfer(ctx context.Context, from, to account.ID, amount uint64) error {
	if from.IsZero() || to.IsZero() {
		return ErrInvalidAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fromBal, ok := l.balances[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, from)
	}
	if _, ok := l.balances[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, to)
	}
	if l.frozen[from] {
		return fmt.Errorf("%w: %s", ErrAccountFrozen, from)
	}
	if l.frozen[to] {
		return fmt.Errorf("%w: %s", ErrAccountFrozen, to)
	}
	if fromBal < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, fromBal, amount)
	}

	l.balances[from] = fromBal - amount
	l.balances[to] += amount
	return nil
}

func (l *MemLedger) BalanceOf(ctx context.Context, acct account.ID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[acct]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, acct)
	}
	return bal, nil
}

func (l *MemLedger) TotalSupply(ctx context.Context, mint account.ID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	supply, ok := l.supplies[mint]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMint, mint)
	}
	return supply, nil
}
