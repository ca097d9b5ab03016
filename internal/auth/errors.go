package auth

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the single outcome for every credential the resolver refuses
var ErrUnauthorized = errors.New("could not validate credentials")

type RejectReason string

const (
	ReasonExpired   RejectReason = "expired"
	ReasonSignature RejectReason = "signature"
	ReasonMalformed RejectReason = "malformed"
)

// RejectedError is returned by TokenCodec.Parse for any token that is not accepted
type RejectedError struct {
	Reason RejectReason
	Err    error
}

func (e *RejectedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token rejected: %s", e.Reason)
	}
	return fmt.Sprintf("token rejected: %s: %v", e.Reason, e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
