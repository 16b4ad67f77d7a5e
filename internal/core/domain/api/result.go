package api

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// Error codes produced locally rather than by the upstream API.
const (
	ErrorCodeNetwork = "NETWORK_ERROR"
	ErrorCodeUnknown = "UNKNOWN_ERROR"
)

// Error is one entry of an upstream error list.
type Error struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message,omitempty"`
	Field     string `json:"field,omitempty"`
}

// Result is the normalised outcome of a call to the upstream API. It has three shapes:
//
//   - Success: Success=true, Status is the 2xx code and Data the JSON body (nil for non-JSON responses).
//   - Application error: Success=false, Status is the upstream code and Errors or
//     ValidationErrors carry the body's error payload verbatim.
//   - Network error: Success=false, Status=0 and Errors holds a single NETWORK_ERROR entry.
type Result struct {
	Success          bool            `json:"success"`
	Status           int             `json:"status"`
	Data             json.RawMessage `json:"data,omitempty"`
	Errors           json.RawMessage `json:"errors,omitempty"`
	ValidationErrors json.RawMessage `json:"validationErrors,omitempty"`
}

// RequestOptions describes a single upstream request.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

// MethodOrDefault returns the request method, GET when unset.
func (o RequestOptions) MethodOrDefault() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// Succeeded builds a success result.
func Succeeded(status int, data json.RawMessage) Result {
	return Result{Success: true, Status: status, Data: data}
}

// NetworkError builds the result returned when a request never completed.
func NetworkError(message string) Result {
	return Result{
		Status: 0,
		Errors: ErrorList(Error{ErrorCode: ErrorCodeNetwork, Message: message}),
	}
}

// ErrorList encodes locally produced errors in the upstream list shape.
func ErrorList(errs ...Error) json.RawMessage {
	raw, err := json.Marshal(errs)
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return raw
}

// ApplicationError builds the result for a non-2xx response from its body.
// errors and validationErrors from the body are passed through unchanged;
// when neither is present an UNKNOWN_ERROR entry is substituted.
func ApplicationError(status int, body []byte) Result {
	res := Result{Status: status}
	var envelope struct {
		Errors           json.RawMessage `json:"errors"`
		ValidationErrors json.RawMessage `json:"validationErrors"`
	}
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		if present(envelope.ValidationErrors) {
			res.ValidationErrors = envelope.ValidationErrors
		}
		if present(envelope.Errors) {
			res.Errors = envelope.Errors
		}
	}
	if res.Errors == nil && res.ValidationErrors == nil {
		res.Errors = ErrorList(Error{ErrorCode: ErrorCodeUnknown, Message: "An unknown error occurred"})
	}
	return res
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// IsNetworkError reports whether r describes a request that never completed.
func (r Result) IsNetworkError() bool {
	return !r.Success && r.Status == 0
}

// FirstError returns the first error entry when Errors is a list of error
// objects. Other payload shapes report false.
func (r Result) FirstError() (Error, bool) {
	if len(r.Errors) == 0 {
		return Error{}, false
	}
	var list []Error
	if err := json.Unmarshal(r.Errors, &list); err != nil || len(list) == 0 {
		return Error{}, false
	}
	return list[0], true
}
