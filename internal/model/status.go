package model

// StatusKind is the phase of a request channel.
type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusLoading StatusKind = "loading"
	StatusFailed  StatusKind = "failed"
)

// RequestStatus is Idle, Loading or Failed(Message).
type RequestStatus struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message,omitempty"`
}

func Idle() RequestStatus    { return RequestStatus{Kind: StatusIdle} }
func Loading() RequestStatus { return RequestStatus{Kind: StatusLoading} }

// Failed carries a user-safe message.
func Failed(message string) RequestStatus {
	return RequestStatus{Kind: StatusFailed, Message: message}
}

func (s RequestStatus) IsIdle() bool    { return s.Kind == StatusIdle || s.Kind == "" }
func (s RequestStatus) IsLoading() bool { return s.Kind == StatusLoading }
func (s RequestStatus) IsFailed() bool  { return s.Kind == StatusFailed }

func (s RequestStatus) String() string {
	if s.IsFailed() {
		return string(StatusFailed) + "(" + s.Message + ")"
	}
	if s.Kind == "" {
		return string(StatusIdle)
	}
	return string(s.Kind)
}
