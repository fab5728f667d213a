package entity

// Transaction statuses. A transaction is created pending before the gateway
// UI opens and is mutated exactly once afterwards.
const (
	TxnPending = "pending"
	TxnSuccess = "success"
	TxnFailed  = "failed"
)

// Order statuses. Completed and not_done are terminal.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderNotDone   = "not_done"
)

// Completion statuses stamped on the terminal staff transition.
const (
	CompletionSuccess = "success"
	CompletionFailed  = "failed"
)
