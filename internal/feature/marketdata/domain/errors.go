// Package domain defines the request contract shared by every market data operation.
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one failure class of the closed request error taxonomy.
type ErrorKind int

const (
	// KindConfiguration means a provider could not be built from its settings.
	KindConfiguration ErrorKind = iota + 1
	// KindBadSymbol means the caller supplied a symbol outside the 1..8 length range.
	KindBadSymbol
	// KindBadRequest means a caller-supplied parameter was outside its accepted range.
	KindBadRequest
	// KindBadResponse means an external payload could not be parsed into the expected shape.
	KindBadResponse
	// KindCommunication means the external provider could not be reached.
	KindCommunication
	// KindAuthentication means the provider rejected the credential.
	KindAuthentication
	// KindAuthorization means the credential is not allowed to perform the operation.
	KindAuthorization
	// KindThrottled means the provider refused the call because of rate limiting.
	KindThrottled
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindBadSymbol:
		return "BadSymbolError"
	case KindBadRequest:
		return "BadRequestError"
	case KindBadResponse:
		return "BadResponseError"
	case KindCommunication:
		return "CommunicationError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindThrottled:
		return "RequestThrottled"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// RequestError is the error arm of every capability operation.
// Kind is always set; Reason, Symbol and Err are filled in when they apply.
type RequestError struct {
	Kind   ErrorKind
	Reason string
	Symbol string
	Err    error
}

func (e *RequestError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Kind == KindBadSymbol:
		msg = fmt.Sprintf("%s(%q)", msg, e.Symbol)
	case e.Reason != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is reports whether target is a RequestError of the same kind,
// so errors.Is(err, domain.ErrThrottled) works for any throttled error.
func (e *RequestError) Is(target error) bool {
	t, ok := target.(*RequestError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks. Never return these directly.
var (
	ErrConfiguration  = &RequestError{Kind: KindConfiguration}
	ErrBadSymbol      = &RequestError{Kind: KindBadSymbol}
	ErrBadRequest     = &RequestError{Kind: KindBadRequest}
	ErrBadResponse    = &RequestError{Kind: KindBadResponse}
	ErrCommunication  = &RequestError{Kind: KindCommunication}
	ErrAuthentication = &RequestError{Kind: KindAuthentication}
	ErrAuthorization  = &RequestError{Kind: KindAuthorization}
	ErrThrottled      = &RequestError{Kind: KindThrottled}
)

// ErrUnsupported is wrapped by the BadRequestError a provider returns
// for an operation it does not offer.
var ErrUnsupported = errors.New("operation not supported by provider")

func NewConfigurationError(reason string) *RequestError {
	return &RequestError{Kind: KindConfiguration, Reason: reason}
}

func NewBadSymbolError(symbol string) *RequestError {
	return &RequestError{Kind: KindBadSymbol, Symbol: symbol}
}

func NewBadRequestError(reason string) *RequestError {
	return &RequestError{Kind: KindBadRequest, Reason: reason}
}

// NewUnsupportedError reports that op is not offered by the provider.
func NewUnsupportedError(op string) *RequestError {
	return &RequestError{Kind: KindBadRequest, Reason: op, Err: ErrUnsupported}
}

func NewBadResponseError(reason string, err error) *RequestError {
	return &RequestError{Kind: KindBadResponse, Reason: reason, Err: err}
}

func NewCommunicationError(reason string, err error) *RequestError {
	return &RequestError{Kind: KindCommunication, Reason: reason, Err: err}
}

func NewAuthenticationError(reason string) *RequestError {
	return &RequestError{Kind: KindAuthentication, Reason: reason}
}

func NewAuthorizationError(reason string) *RequestError {
	return &RequestError{Kind: KindAuthorization, Reason: reason}
}

func NewThrottledError(reason string) *RequestError {
	return &RequestError{Kind: KindThrottled, Reason: reason}
}

// KindOf extracts the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
