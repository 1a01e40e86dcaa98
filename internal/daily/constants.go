package daily

// Formatted error messages
const (
	ErrMsgReadPoolFmt      = "failed to read daily quest pool %s: %w"
	ErrMsgParsePoolFmt     = "failed to parse daily quest pool: %w"
	ErrMsgPoolSizeFmt      = "%s: have %d, need %d"
	ErrMsgPoolDuplicateFmt = "%s: %q"
	ErrMsgPoolEntryFmt     = "%w: pool entry %d has an empty name or non-positive reward"
	ErrMsgLimitFmt         = "%w: %d of %d done today"
	ErrMsgNotSelectedFmt   = "%w: %q"
	ErrMsgAlreadyDoneFmt   = "%w: %q"
)

// History texts
const (
	HistoryTextCompletedFmt = "%s Daily quest: %s (+%d pts)"
)
