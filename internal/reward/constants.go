package reward

// Formatted error messages
const (
	ErrMsgInsufficientFundsFmt = "%w: cost %d, balance %d"
	ErrMsgNegativeCostFmt      = "%w: negative cost %d"
)
