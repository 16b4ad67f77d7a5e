package account

import (
	"net/url"
	"strconv"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

// Status of an account request as tracked by the upstream API.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// UserDetails holds the applicant's personal details.
type UserDetails struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Telephone    string `json:"telephoneNumber,omitempty"`
	Organisation string `json:"organisation,omitempty"`
	JobTitle     string `json:"jobTitle,omitempty"`
}

// AreaSelection is one area the applicant asks to be given access to.
type AreaSelection struct {
	AreaID  area.ID `json:"areaId"`
	Primary bool    `json:"primary"`
}

// Request is the prepared account-request submission sent upstream.
type Request struct {
	User  UserDetails     `json:"user"`
	Areas []AreaSelection `json:"areas"`
}

// AreaIDs returns the ids of every selected area.
func (r *Request) AreaIDs() []area.ID {
	out := make([]area.ID, 0, len(r.Areas))
	for _, a := range r.Areas {
		out = append(out, a.AreaID)
	}
	return out
}

// Query filters the upstream account listing.
type Query struct {
	Status Status
	Search string
	Page   int
	Limit  int
}

// Values encodes the query for the upstream request.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
