package gamechat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"showlink/internal/apperr"
	"showlink/internal/config"
	"showlink/internal/dao"
	"showlink/internal/gamesession"
	"showlink/internal/model"
	"showlink/internal/utils"
)

const (
	routeLogin           = "Auth/LoginAndReturnSessionTicket"
	routeGetGameSessions = "GameSessions/GetGameSessions"
	routeGetGameSession  = "GameSessions/GetGameSession"
)

// Client talks to the GameChat REST API.
type Client struct {
	conf    config.GameChatConfig
	httpCli *http.Client
	logger  *logrus.Entry
}

func NewClient(conf config.GameChatConfig, logger *logrus.Entry) *Client {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		conf:    conf,
		httpCli: &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithHTTPClient replaces the http client, mostly for tests.
func (c *Client) WithHTTPClient(cli *http.Client) *Client {
	c.httpCli = cli
	return c
}

// apiUrl is checked on every call so that a missing endpoint fails before
// any request leaves the process.
func (c *Client) apiUrl(route string) (string, error) {
	if c.conf.Endpoint == "" {
		return "", apperr.Config(apperr.MsgMissingGameChat)
	}
	return fmt.Sprintf("%s/api/%s", strings.TrimRight(c.conf.Endpoint, "/"), route), nil
}

type searchBody struct {
	PropertyFilter *dao.PropertyFilter `json:"propertyFilter"`
}

// Search runs one unpaged search and returns the records as the backend sent
// them.
func (c *Client) Search(ctx context.Context, filter gamesession.Filter) ([]*model.GameSession, error) {
	return c.search(ctx, filter, nil)
}

func (c *Client) search(ctx context.Context, filter gamesession.Filter, propertyFilter *dao.PropertyFilter) ([]*model.GameSession, error) {
	uri, err := c.apiUrl(routeGetGameSessions)
	if err != nil {
		return nil, err
	}
	if q := filter.Query().Encode(); q != "" {
		uri += "?" + q
	}
	if propertyFilter == nil {
		propertyFilter = &dao.PropertyFilter{}
	}

	var sessions []*model.GameSession
	if err := utils.DoJSON(ctx, c.httpCli, http.MethodPost, uri, nil, searchBody{PropertyFilter: propertyFilter}, &sessions); err != nil {
		c.logger.Warnf("search game sessions with status %q failed: %v", filter.Status, err)
		return nil, err
	}
	return sessions, nil
}

// SearchGameSessions is the paged search. The page is only cut when both
// pageIndex and pageSize are set; TotalCount always covers every match.
func (c *Client) SearchGameSessions(ctx context.Context, req *dao.SearchSessionsRequest) (*gamesession.Result, error) {
	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}
	found, err := c.search(ctx, filter, req.PropertyFilter)
	if err != nil {
		return nil, err
	}

	sessions := gamesession.PrepareSessions(found, filter.IgnoreNoConnection)
	result := &gamesession.Result{TotalCount: len(sessions)}
	if req.PageIndex > 0 && req.PageSize > 0 {
		sessions = page(sessions, req.PageIndex, req.PageSize)
	}
	result.Sessions = sessions
	return result, nil
}

func page(sessions []*model.GameSession, index, size int) []*model.GameSession {
	start := (index - 1) * size
	if start >= len(sessions) {
		return []*model.GameSession{}
	}
	end := min(start+size, len(sessions))
	return sessions[start:end]
}

// GetGameSessionById looks a session up by its video id.
func (c *Client) GetGameSessionById(ctx context.Context, id string) (*model.GameSession, error) {
	uri, err := c.apiUrl(routeGetGameSession)
	if err != nil {
		return nil, err
	}
	uri += "?" + url.Values{"streamUri": {gamesession.StreamUri(id)}}.Encode()

	var session *model.GameSession
	if err := utils.DoJSON(ctx, c.httpCli, http.MethodGet, uri, nil, nil, &session); err != nil {
		return nil, err
	}
	prepared := gamesession.PrepareSessions([]*model.GameSession{session}, false)
	if len(prepared) == 0 {
		return nil, apperr.New(http.StatusNotFound, apperr.MsgGameSessionNotFound)
	}
	return prepared[0], nil
}

type loginBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (c *Client) LoginAndReturnSession(ctx context.Context, email, password string) (*model.GameChatLogin, error) {
	uri, err := c.apiUrl(routeLogin)
	if err != nil {
		return nil, err
	}
	login := &model.GameChatLogin{}
	if err := utils.DoJSON(ctx, c.httpCli, http.MethodPost, uri, nil, loginBody{Login: email, Password: password}, login); err != nil {
		return nil, err
	}
	return login, nil
}
