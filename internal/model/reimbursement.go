package model

import (
	"encoding/json"
	"time"
)

// ReimbStatus is the lifecycle state of a reimbursement.
type ReimbStatus string

const (
	StatusPending  ReimbStatus = "Pending"
	StatusApproved ReimbStatus = "Approved"
	StatusDenied   ReimbStatus = "Denied"
)

// Statuses lists every status a reimbursement may hold.
var Statuses = []ReimbStatus{StatusPending, StatusApproved, StatusDenied}

// IsResolution reports whether s is a terminal status a resolver may assign.
func (s ReimbStatus) IsResolution() bool {
	return s == StatusApproved || s == StatusDenied
}

// Reimbursement is an expense claim submitted by an employee.
type Reimbursement struct {
	ReimbID     int         `json:"reimbId"`
	Amount      float64     `json:"amount"`
	Submitted   time.Time   `json:"submitted"`
	Resolved    *time.Time  `json:"resolved,omitempty"`
	Description string      `json:"description"`
	Author      string      `json:"author"`
	Resolver    string      `json:"resolver,omitempty"`
	Status      ReimbStatus `json:"status"`
	ReimbType   string      `json:"reimbType"`
}

// UpdateReimbursementRequest carries the fields an author may change while a
// reimbursement is still pending. It remembers which keys the caller sent so
// unknown properties can be rejected.
type UpdateReimbursementRequest struct {
	ReimbID     int     `json:"reimbId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ReimbType   string  `json:"reimbType"`

	keys []string
}

// Keys returns the property names present in the decoded payload.
func (r *UpdateReimbursementRequest) Keys() []string { return r.keys }

// WithKeys sets the provided property names, for callers not decoding JSON.
func (r *UpdateReimbursementRequest) WithKeys(keys ...string) *UpdateReimbursementRequest {
	r.keys = keys
	return r
}

func (r *UpdateReimbursementRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	type plain UpdateReimbursementRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = UpdateReimbursementRequest(p)
	r.keys = make([]string, 0, len(raw))
	for k := range raw {
		r.keys = append(r.keys, k)
	}
	return nil
}

// ResolveReimbursementRequest carries a finance manager's decision.
type ResolveReimbursementRequest struct {
	ReimbID  int         `json:"reimbId"`
	Status   ReimbStatus `json:"status"`
	Resolver string      `json:"resolver"`
}
