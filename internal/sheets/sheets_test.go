package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"showlink/internal/apperr"
	"showlink/internal/config"
)

func newTestClient(t *testing.T, conf config.SheetsConfig, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(conf, logrus.NewEntry(logrus.New()),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
		option.WithoutAuthentication(),
	)
}

func TestAppendRows(t *testing.T) {
	var gotPath, gotOption string
	var gotBody struct {
		Values [][]any `json:"values"`
	}
	cli := newTestClient(t, config.SheetsConfig{SpreadsheetId: "sheet-1"}, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOption = r.URL.Query().Get("valueInputOption")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-1"}`))
	})

	err := cli.AppendRows(context.Background(), [][]any{{"2024-05-01", "contact", "a@b.c"}}, "")
	if err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}
	if !strings.Contains(gotPath, "spreadsheets/sheet-1/values/") || !strings.HasSuffix(gotPath, ":append") {
		t.Errorf("path = %s", gotPath)
	}
	if !strings.Contains(gotPath, DefaultRange) {
		t.Errorf("path %s should use the default range", gotPath)
	}
	if gotOption != "USER_ENTERED" {
		t.Errorf("valueInputOption = %q", gotOption)
	}
	if len(gotBody.Values) != 1 || gotBody.Values[0][2] != "a@b.c" {
		t.Errorf("values = %v", gotBody.Values)
	}
}

func TestAppendRows_MissingSpreadsheet(t *testing.T) {
	cli := NewClient(config.SheetsConfig{}, logrus.NewEntry(logrus.New()))
	err := cli.AppendRows(context.Background(), [][]any{{"x"}}, "")
	if apperr.StatusCode(err) != http.StatusForbidden || err.Error() != apperr.MsgSheetNotExists {
		t.Errorf("AppendRows() error = %v", err)
	}
}

func TestMetadata(t *testing.T) {
	cli := newTestClient(t, config.SheetsConfig{SpreadsheetId: "sheet-1"}, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"spreadsheetId": "sheet-1",
			"spreadsheetUrl": "https://docs.google.com/spreadsheets/d/sheet-1",
			"properties": {"title": "Leads", "locale": "en_US", "timeZone": "Etc/GMT"},
			"sheets": [{"properties": {"title": "Sheet1"}}, {"properties": {"title": "Archive"}}]
		}`))
	})

	m, err := cli.Metadata(context.Background())
	if err != nil {
		t.Fatalf("Metadata() error = %v", err)
	}
	if m.Title != "Leads" || len(m.Sheets) != 2 || m.Sheets[1] != "Archive" {
		t.Errorf("unexpected metadata %+v", m)
	}
}
