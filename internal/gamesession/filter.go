package gamesession

import (
	"net/url"
	"strings"
	"time"

	"showlink/internal/utils"
)

const (
	StatusPending = "Pending"
	StatusLive    = "Live"
	StatusPast    = "Past"
)

const (
	statusSeparator   = ","
	defaultLookback   = 30 * 24 * time.Hour
	DefaultStatusList = StatusLive + statusSeparator + StatusPast
)

var validStatuses = map[string]struct{}{
	StatusPending: {},
	StatusLive:    {},
	StatusPast:    {},
}

func IsValidStatus(status string) bool {
	_, ok := validStatuses[status]
	return ok
}

// Filter is the set of search constraints understood by the session backend.
// Dates are in utils.CanonicalDateLayout. Status holds either one status or,
// before aggregation, a comma separated list of them.
type Filter struct {
	Status             string
	StartedFrom        string
	StartedTo          string
	IgnoreNoConnection bool
	SearchText         string
	Genre              string
}

// WithStatus returns a copy of f restricted to a single status.
func (f Filter) WithStatus(status string) Filter {
	f.Status = status
	return f
}

// Query encodes the non-empty attributes of f. IgnoreNoConnection is applied
// locally and never sent.
func (f Filter) Query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("searchText", f.SearchText)
	set("status", f.Status)
	set("genre", f.Genre)
	set("timeStartedFrom", f.StartedFrom)
	set("timeStartedTo", f.StartedTo)
	return q
}

// RawFilter is the filter as received from a client, before defaults and date
// normalization are applied.
type RawFilter struct {
	StartedFrom string
	StartedTo   string
	Status      string
}

func (r RawFilter) IsEmpty() bool {
	return r.StartedFrom == "" && r.StartedTo == "" && r.Status == ""
}

// SplitStatuses splits a comma separated status list into trimmed, non-empty
// tokens, keeping their order.
func SplitStatuses(raw string) []string {
	var statuses []string
	for _, s := range strings.Split(raw, statusSeparator) {
		s = strings.TrimSpace(s)
		if s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// DefaultFilter is used when a client supplies no filter at all: live and past
// sessions started within the last 30 days.
func DefaultFilter(now time.Time, ignoreNoConnection bool) Filter {
	return Filter{
		Status:             DefaultStatusList,
		StartedFrom:        utils.FormatCanonical(now.Add(-defaultLookback)),
		StartedTo:          utils.FormatCanonical(now),
		IgnoreNoConnection: ignoreNoConnection,
	}
}

// ResolveFilter turns a raw client filter into a backend filter. now is only
// consulted when the default filter applies.
func ResolveFilter(raw RawFilter, ignoreNoConnection bool, now func() time.Time) (Filter, error) {
	if raw.IsEmpty() {
		return DefaultFilter(now(), ignoreNoConnection), nil
	}

	f := Filter{
		Status:             raw.Status,
		IgnoreNoConnection: ignoreNoConnection,
	}
	var err error
	if raw.StartedFrom != "" {
		if f.StartedFrom, err = utils.ToCanonicalDate(raw.StartedFrom); err != nil {
			return Filter{}, err
		}
	}
	if raw.StartedTo != "" {
		if f.StartedTo, err = utils.ToCanonicalDate(raw.StartedTo); err != nil {
			return Filter{}, err
		}
	}
	return f, nil
}
