package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgRequestFailed   = "Request failed"
	msgUnauthenticated = "Authentication failed"
	msgMnemonicFailed  = "Could not initialise mnemonic"
	msgDeriveFailed    = "Could not derive address"
	msgExportFailed    = "Could not export key"
	msgSettleFailed    = "Could not settle transaction"
	msgBalanceFailed   = "Could not retrieve balance"
	msgSettled         = "Transaction settled"
	msgDuplicate       = "Transaction already processed"
)

// Response is the envelope of every custody endpoint. Errors of 5xx
// responses carry oopsErr instead of the internal detail.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
