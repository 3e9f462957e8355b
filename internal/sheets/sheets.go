package sheets

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"showlink/internal/apperr"
	"showlink/internal/config"
)

const (
	DefaultRange     = "Sheet1!A:B"
	valueInputOption = "USER_ENTERED"
)

// Client appends rows to the configured spreadsheet.
type Client struct {
	conf    config.SheetsConfig
	options []option.ClientOption
	logger  *logrus.Entry

	mu  sync.Mutex
	svc *gsheets.Service
}

// NewClient does not authorize; that happens on first use. Extra options are
// appended to the credentials option, which is how tests point the client at a
// fake server.
func NewClient(conf config.SheetsConfig, logger *logrus.Entry, options ...option.ClientOption) *Client {
	var opts []option.ClientOption
	if conf.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))
	opts = append(opts, options...)
	return &Client{conf: conf, options: opts, logger: logger}
}

func (c *Client) service(ctx context.Context) (*gsheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}
	svc, err := gsheets.NewService(ctx, c.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize google sheets: %w", err)
	}
	c.svc = svc
	return svc, nil
}

func (c *Client) spreadsheetId() (string, error) {
	if c.conf.SpreadsheetId == "" {
		return "", apperr.New(http.StatusForbidden, apperr.MsgSheetNotExists)
	}
	return c.conf.SpreadsheetId, nil
}

// AppendRows adds rows after the last row of sheetRange. An empty range means
// the configured one, or DefaultRange.
func (c *Client) AppendRows(ctx context.Context, rows [][]any, sheetRange string) error {
	id, err := c.spreadsheetId()
	if err != nil {
		return err
	}
	if sheetRange == "" {
		sheetRange = c.conf.Range
	}
	if sheetRange == "" {
		sheetRange = DefaultRange
	}
	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	_, err = svc.Spreadsheets.Values.
		Append(id, sheetRange, &gsheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return apperr.Wrap(http.StatusBadGateway, err.Error(), err)
	}
	c.logger.Debugf("appended %d rows to %s", len(rows), sheetRange)
	return nil
}

type Metadata struct {
	SpreadsheetId string   `json:"spreadsheetId"`
	Title         string   `json:"title"`
	Locale        string   `json:"locale"`
	TimeZone      string   `json:"timeZone"`
	Sheets        []string `json:"sheets"`
	Url           string   `json:"url"`
}

// Metadata describes the spreadsheet and lists its sheets.
func (c *Client) Metadata(ctx context.Context) (*Metadata, error) {
	id, err := c.spreadsheetId()
	if err != nil {
		return nil, err
	}
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	ss, err := svc.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", id, err)
	}

	m := &Metadata{SpreadsheetId: ss.SpreadsheetId, Url: ss.SpreadsheetUrl}
	if ss.Properties != nil {
		m.Title = ss.Properties.Title
		m.Locale = ss.Properties.Locale
		m.TimeZone = ss.Properties.TimeZone
	}
	for _, sheet := range ss.Sheets {
		if sheet.Properties != nil {
			m.Sheets = append(m.Sheets, sheet.Properties.Title)
		}
	}
	return m, nil
}
