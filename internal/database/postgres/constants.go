package postgres

// Transaction handling
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"

	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Discovery Operations
const (
	ErrMsgFailedToCheckDiscovery = "failed to check secret discovery"
	ErrMsgFailedToMarkDiscovery  = "failed to mark secret discovered"
	ErrMsgFailedToListDiscovery  = "failed to list secret discoveries"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToInsertBattle     = "failed to insert battle result"
	ErrMsgFailedToUpsertCreature   = "failed to upsert creature record"
	ErrMsgFailedToGetMatchStats    = "failed to get match stats"
	ErrMsgFailedToGetTopCreatures  = "failed to get top creatures"
	ErrMsgFailedToScanCreatureRows = "failed to scan creature record"
)
