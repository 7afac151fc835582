package registration

import "fmt"

// RecordStoreError means the record store rejected an insert, update or
// select. The payment sequence aborts before contacting the processor.
type RecordStoreError struct {
	Op  string
	Err error
}

func (e *RecordStoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *RecordStoreError) Unwrap() error { return e.Err }

// PaymentSetupError means the processor rejected the intent request.
// The pending row is left in place; there is no compensating delete.
type PaymentSetupError struct {
	Err error
}

func (e *PaymentSetupError) Error() string {
	return fmt.Sprintf("payment setup failed: %v", e.Err)
}

func (e *PaymentSetupError) Unwrap() error { return e.Err }

// PaymentDeclinedError means the card confirmation was declined or
// failed processor-side validation. The row stays pending and the user
// may resubmit.
type PaymentDeclinedError struct {
	Err error
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %v", e.Err)
}

func (e *PaymentDeclinedError) Unwrap() error { return e.Err }
