package storage

import "vdpscanner/pkg/serrors"

// Transaction misuse errors. Both carry serrors.ErrInternal since they point
// at a programming error rather than bad input or an unreachable database.
var (
	// ErrAlreadyInTx is returned by Begin and Migrate on a transactional handle.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "not in tx")
)
