package dao

import (
	"strconv"

	"showlink/internal/gamesession"
	"showlink/internal/model"
	"showlink/internal/utils"
)

type RandomSearchRequest struct {
	// ISO8601 date, e.g. 2024-03-10T20:30 +07:00
	StartedFrom string `form:"startedFrom"`
	StartedTo   string `form:"startedTo"`
	// comma separated list of Pending, Live and Past
	Status             string `form:"status" binding:"omitempty,statuslist"`
	Limit              string `form:"limit"`
	IgnoreNoConnection string `form:"ignoreNoConnection"`
}

// LimitOr parses Limit, falling back to def when it is missing, zero or not
// a number. Negative values are kept.
func (r *RandomSearchRequest) LimitOr(def int) int {
	limit, err := strconv.Atoi(r.Limit)
	if err != nil || limit == 0 {
		return def
	}
	return limit
}

func (r *RandomSearchRequest) IgnoresNoConnection() bool {
	return r.IgnoreNoConnection == "true"
}

func (r *RandomSearchRequest) RawFilter() gamesession.RawFilter {
	return gamesession.RawFilter{
		StartedFrom: r.StartedFrom,
		StartedTo:   r.StartedTo,
		Status:      r.Status,
	}
}

type SessionListResponse struct {
	Success    bool                 `json:"success"`
	Data       []*model.GameSession `json:"data"`
	TotalCount int                  `json:"totalCount"`
}

func ToSessionListResponse(r *gamesession.Result) SessionListResponse {
	return SessionListResponse{
		Success:    true,
		Data:       r.Sessions,
		TotalCount: r.TotalCount,
	}
}

type SessionFilterOptions struct {
	SearchText string `json:"searchText,omitempty" binding:"omitempty,max=200"`
	Status     string `json:"status,omitempty" binding:"omitempty,gamestatus"`
	Genre      string `json:"genre,omitempty" binding:"omitempty,max=100"`
	// ISO8601 dates
	TimeStartedFrom    string `json:"timeStartedFrom,omitempty"`
	TimeStartedTo      string `json:"timeStartedTo,omitempty"`
	IgnoreNoConnection bool   `json:"ignoreNoConnection,omitempty"`
}

// PropertyFilter is forwarded to the session backend untouched.
type PropertyFilter struct {
	AltIds []int    `json:"altIds,omitempty"`
	Ids    []string `json:"ids,omitempty"`
}

type SearchSessionsRequest struct {
	PageIndex      int                   `json:"pageIndex,omitempty" binding:"omitempty,min=1"`
	PageSize       int                   `json:"pageSize,omitempty" binding:"omitempty,min=1"`
	FilterOptions  *SessionFilterOptions `json:"filterOptions,omitempty"`
	PropertyFilter *PropertyFilter       `json:"propertyFilter,omitempty"`
}

// Filter normalizes the request dates and returns the backend filter.
func (r *SearchSessionsRequest) Filter() (gamesession.Filter, error) {
	var f gamesession.Filter
	opts := r.FilterOptions
	if opts == nil {
		return f, nil
	}
	f.SearchText = opts.SearchText
	f.Status = opts.Status
	f.Genre = opts.Genre
	f.IgnoreNoConnection = opts.IgnoreNoConnection

	var err error
	if opts.TimeStartedFrom != "" {
		if f.StartedFrom, err = utils.ToCanonicalDate(opts.TimeStartedFrom); err != nil {
			return gamesession.Filter{}, err
		}
	}
	if opts.TimeStartedTo != "" {
		if f.StartedTo, err = utils.ToCanonicalDate(opts.TimeStartedTo); err != nil {
			return gamesession.Filter{}, err
		}
	}
	return f, nil
}

type PagedSessionListResponse struct {
	Success    bool                 `json:"success"`
	Data       []*model.GameSession `json:"data"`
	PageIndex  int                  `json:"pageIndex"`
	PageSize   int                  `json:"pageSize"`
	TotalCount int                  `json:"totalCount"`
}

// ToPagedSessionListResponse fills in the page the client asked for, or
// page 1 spanning every record when it did not.
func ToPagedSessionListResponse(req *SearchSessionsRequest, r *gamesession.Result) PagedSessionListResponse {
	resp := PagedSessionListResponse{
		Success:    true,
		Data:       r.Sessions,
		PageIndex:  req.PageIndex,
		PageSize:   req.PageSize,
		TotalCount: r.TotalCount,
	}
	if resp.PageIndex == 0 {
		resp.PageIndex = 1
	}
	if resp.PageSize == 0 {
		resp.PageSize = r.TotalCount
	}
	if resp.Data == nil {
		resp.Data = []*model.GameSession{}
	}
	return resp
}
