package errors

// Error messages for the two client-visible failure classes. The external
// contract reuses the HTTP status as the error code, so no separate code
// constants are needed.
const (
	MsgNotFound      = "Not found"
	MsgUnprocessable = "unprocessable"
)
