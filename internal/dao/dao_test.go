package dao

import (
	"net/http"
	"testing"
	"time"

	"showlink/internal/apperr"
	"showlink/internal/gamesession"
	"showlink/internal/model"
)

func TestRandomSearchRequest_LimitOr(t *testing.T) {
	tests := []struct {
		limit string
		want  int
	}{
		{"", 5},
		{"abc", 5},
		{"0", 5},
		{"12", 12},
		{"-2", -2},
	}
	for _, tt := range tests {
		t.Run(tt.limit, func(t *testing.T) {
			r := RandomSearchRequest{Limit: tt.limit}
			if got := r.LimitOr(5); got != tt.want {
				t.Errorf("LimitOr() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRandomSearchRequest_IgnoresNoConnection(t *testing.T) {
	for value, want := range map[string]bool{"true": true, "True": false, "1": false, "": false} {
		r := RandomSearchRequest{IgnoreNoConnection: value}
		if got := r.IgnoresNoConnection(); got != want {
			t.Errorf("IgnoresNoConnection(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestSearchSessionsRequest_Filter(t *testing.T) {
	req := SearchSessionsRequest{FilterOptions: &SessionFilterOptions{
		Status:          "Live",
		SearchText:      "jazz",
		TimeStartedFrom: "2024-03-10T20:30 +07:00",
	}}
	f, err := req.Filter()
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if f.StartedFrom != "2024-03-10T13:30:00" || f.StartedTo != "" || f.Status != "Live" || f.SearchText != "jazz" {
		t.Errorf("unexpected filter %+v", f)
	}

	req.FilterOptions.TimeStartedTo = "yesterday"
	if _, err := req.Filter(); apperr.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("expected validation error, got %v", err)
	}

	empty := SearchSessionsRequest{}
	if f, err := empty.Filter(); err != nil || f != (gamesession.Filter{}) {
		t.Errorf("empty request gave %+v, %v", f, err)
	}
}

func TestToPagedSessionListResponse(t *testing.T) {
	result := &gamesession.Result{TotalCount: 3}

	resp := ToPagedSessionListResponse(&SearchSessionsRequest{}, result)
	if resp.PageIndex != 1 || resp.PageSize != 3 || resp.Data == nil {
		t.Errorf("unexpected defaults %+v", resp)
	}

	resp = ToPagedSessionListResponse(&SearchSessionsRequest{PageIndex: 2, PageSize: 10}, result)
	if resp.PageIndex != 2 || resp.PageSize != 10 || resp.TotalCount != 3 {
		t.Errorf("unexpected page %+v", resp)
	}
}

func TestToFriendSpecs(t *testing.T) {
	friends := []model.PlayFabFriend{
		{FriendPlayFabId: "A1", Username: "ann", TitleDisplayName: "Ann", Profile: &model.PlayFabFriendProfile{AvatarUrl: "https://a/ann.png"}, ActiveShowId: "show"},
		{FriendPlayFabId: "B2", Username: "bob"},
	}
	specs := ToFriendSpecs(friends)
	if len(specs) != 2 {
		t.Fatalf("len = %d", len(specs))
	}
	want := FriendSpec{FriendId: "A1", Username: "ann", DisplayName: "Ann", AvatarUrl: "https://a/ann.png", ActiveShowId: "show"}
	if specs[0] != want {
		t.Errorf("specs[0] = %+v, want %+v", specs[0], want)
	}
	if specs[1].AvatarUrl != "" {
		t.Errorf("missing profile should give empty avatar, got %q", specs[1].AvatarUrl)
	}
}

func TestToProfileSpec(t *testing.T) {
	if ToProfileSpec(nil) != nil {
		t.Error("nil profile should map to nil")
	}
	spec := ToProfileSpec(&model.PlayerProfile{
		PlayerId:              "P1",
		DisplayName:           "Pat",
		Statistics:            []model.PlayerStatistic{{Name: "shows", Value: 4}},
		ContactEmailAddresses: []model.ContactEmail{{EmailAddress: ""}, {EmailAddress: "pat@example.com"}},
	})
	if spec.Email != "pat@example.com" || spec.Statistics["shows"] != 4 || spec.PlayFabId != "P1" {
		t.Errorf("unexpected profile %+v", spec)
	}
}

func TestLeadRow(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("x", 3600))
	lead := ToLead("id-1", &SubmissionFormRequest{
		Type:     SubmissionContact,
		FormData: SubmissionFormData{Email: "a@b.c", Name: "A", Message: "hi"},
	}, at)
	row := lead.Row()
	if row[0] != "2024-05-01T09:00:00Z" || row[1] != "contact" || row[2] != "a@b.c" || row[4] != "hi" {
		t.Errorf("unexpected row %v", row)
	}
	if lead.TemplateData()["name"] != "A" {
		t.Errorf("unexpected template data %v", lead.TemplateData())
	}
}
