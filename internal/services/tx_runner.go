package services

import "context"

// TxRunner scopes a group of repository writes to one transaction. The
// mongo-backed implementation lives in pkg/database; tests substitute a
// pass-through.
type TxRunner interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
