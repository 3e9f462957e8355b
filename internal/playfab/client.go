package playfab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"showlink/internal/apperr"
	"showlink/internal/config"
	"showlink/internal/model"
	"showlink/internal/utils"
)

const (
	apiClient      = "Client"
	apiServer      = "Server"
	apiCloudScript = "CloudScript"
)

const (
	routeLoginWithEmail     = "LoginWithEmailAddress"
	routeForgotPassword     = "SendCustomAccountRecoveryEmail"
	routeUpdateAvatarUrl    = "UpdateAvatarUrl"
	routeGetPlayerProfile   = "GetPlayerProfile"
	routeGetFriendsList     = "GetFriendsList"
	routeExecuteCloudScript = "ExecuteCloudScript"
	routeExecuteFunction    = "ExecuteFunction"
)

const (
	functionAddSubscriber   = "AddSubscriberToSendGrid"
	functionGetProducerData = "getProducerData"
	functionSubmitContactUs = "submitContactUs"
)

const (
	headerAuthorization = "X-Authorization"
	headerSecretKey     = "X-SecretKey"
	headerEntityToken   = "X-EntityToken"
)

// Client calls the PlayFab title APIs.
type Client struct {
	conf    config.PlayFabConfig
	httpCli *http.Client
	logger  *logrus.Entry
	// baseUrl overrides https://<titleId>.<endpoint>, used by tests
	baseUrl string
}

func NewClient(conf config.PlayFabConfig, logger *logrus.Entry) *Client {
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

func (c *Client) WithBaseUrl(baseUrl string, cli *http.Client) *Client {
	c.baseUrl = strings.TrimRight(baseUrl, "/")
	c.httpCli = cli
	return c
}

func (c *Client) endpoint(apiType, route string) (string, error) {
	if c.conf.TitleId == "" || (c.conf.Endpoint == "" && c.baseUrl == "") {
		return "", apperr.Config(apperr.MsgMissingPlayFab)
	}
	base := c.baseUrl
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", c.conf.TitleId, c.conf.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", base, apiType, route), nil
}

func (c *Client) secureHeaders() (map[string]string, error) {
	if c.conf.SecretKey == "" {
		return nil, apperr.New(http.StatusUnauthorized, apperr.MsgMissingPlayFab)
	}
	return map[string]string{headerSecretKey: c.conf.SecretKey}, nil
}

// call posts body to a PlayFab route and unwraps the response envelope.
func call[T any](ctx context.Context, c *Client, apiType, route string, headers map[string]string, body any) (T, error) {
	var zero T
	uri, err := c.endpoint(apiType, route)
	if err != nil {
		return zero, err
	}

	var resp model.PlayFabResponse[T]
	if err := utils.DoJSON(ctx, c.httpCli, http.MethodPost, uri, headers, body, &resp); err != nil {
		return zero, err
	}
	if resp.Code != http.StatusOK {
		return zero, apperr.Backend(resp.Code, resp.ErrorMessage)
	}
	return resp.Data, nil
}

type loginRequest struct {
	TitleId  string `json:"TitleId"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

func (c *Client) LoginWithEmail(ctx context.Context, email, password string) (*model.PlayFabLogin, error) {
	login, err := call[*model.PlayFabLogin](ctx, c, apiClient, routeLoginWithEmail, nil, loginRequest{
		TitleId:  c.conf.TitleId,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if login == nil {
		return nil, apperr.Backend(http.StatusBadGateway, "empty playfab login response")
	}
	return login, nil
}

type forgotPasswordRequest struct {
	TitleId         string `json:"TitleId"`
	Email           string `json:"Email"`
	EmailTemplateId string `json:"EmailTemplateId"`
}

// ForgotPassword has PlayFab send the account recovery email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if c.conf.TitleId == "" || c.conf.EmailTemplateId == "" {
		return apperr.New(http.StatusUnauthorized, apperr.MsgMissingPlayFab)
	}
	headers, err := c.secureHeaders()
	if err != nil {
		return err
	}
	_, err = call[json.RawMessage](ctx, c, apiServer, routeForgotPassword, headers, forgotPasswordRequest{
		TitleId:         c.conf.TitleId,
		Email:           email,
		EmailTemplateId: c.conf.EmailTemplateId,
	})
	return err
}

type updateAvatarRequest struct {
	TitleId   string `json:"TitleId"`
	PlayFabId string `json:"PlayFabId"`
	ImageUrl  string `json:"ImageUrl"`
}

func (c *Client) UpdateAvatarUrl(ctx context.Context, playFabId, imageUrl string) error {
	if imageUrl == "" {
		return apperr.Config(apperr.MsgMissingStorage)
	}
	headers, err := c.secureHeaders()
	if err != nil {
		return err
	}
	_, err = call[json.RawMessage](ctx, c, apiServer, routeUpdateAvatarUrl, headers, updateAvatarRequest{
		TitleId:   c.conf.TitleId,
		PlayFabId: playFabId,
		ImageUrl:  imageUrl,
	})
	return err
}

// DefaultProfileConstraints is what GetPlayerProfile asks for unless told
// otherwise.
var DefaultProfileConstraints = model.ProfileConstraints{
	ShowContactEmailAddresses: true,
	ShowDisplayName:           true,
	ShowAvatarUrl:             true,
	ShowStatistics:            true,
}

type playerProfileRequest struct {
	PlayFabId          string                   `json:"PlayFabId"`
	ProfileConstraints model.ProfileConstraints `json:"ProfileConstraints"`
}

type playerProfileResponse struct {
	PlayerProfile *model.PlayerProfile `json:"PlayerProfile"`
}

// GetPlayerProfile loads a profile. Constraints set in extra are added to
// DefaultProfileConstraints.
func (c *Client) GetPlayerProfile(ctx context.Context, sessionToken, playFabId string, extra *model.ProfileConstraints) (*model.PlayerProfile, error) {
	constraints := DefaultProfileConstraints
	if extra != nil {
		constraints.ShowContactEmailAddresses = constraints.ShowContactEmailAddresses || extra.ShowContactEmailAddresses
		constraints.ShowDisplayName = constraints.ShowDisplayName || extra.ShowDisplayName
		constraints.ShowAvatarUrl = constraints.ShowAvatarUrl || extra.ShowAvatarUrl
		constraints.ShowStatistics = constraints.ShowStatistics || extra.ShowStatistics
	}
	resp, err := call[playerProfileResponse](ctx, c, apiClient, routeGetPlayerProfile,
		map[string]string{headerAuthorization: sessionToken},
		playerProfileRequest{PlayFabId: playFabId, ProfileConstraints: constraints})
	if err != nil {
		return nil, err
	}
	return resp.PlayerProfile, nil
}

type friendsListRequest struct {
	ProfileConstraints model.ProfileConstraints `json:"ProfileConstraints"`
}

type friendsListResponse struct {
	Friends []model.PlayFabFriend `json:"Friends"`
}

func (c *Client) GetFriendsList(ctx context.Context, sessionToken string) ([]model.PlayFabFriend, error) {
	resp, err := call[friendsListResponse](ctx, c, apiClient, routeGetFriendsList,
		map[string]string{headerAuthorization: sessionToken},
		friendsListRequest{ProfileConstraints: model.ProfileConstraints{ShowAvatarUrl: true, ShowStatistics: true}})
	if err != nil {
		return nil, err
	}
	return resp.Friends, nil
}

type executeFunctionRequest struct {
	FunctionName      string `json:"FunctionName"`
	FunctionParameter any    `json:"FunctionParameter"`
	PlayFabId         string `json:"PlayFabId,omitempty"`
}

type producerData struct {
	Permissions model.ProducerPermissions `json:"permissions"`
}

// GetProducerPermissions returns nil, without an error, when the player is
// not a producer or the script gave nothing back.
func (c *Client) GetProducerPermissions(ctx context.Context, sessionToken string) (model.ProducerPermissions, error) {
	result, err := call[model.CloudScriptResult](ctx, c, apiClient, routeExecuteCloudScript,
		map[string]string{headerAuthorization: sessionToken},
		executeFunctionRequest{
			FunctionName:      functionGetProducerData,
			FunctionParameter: map[string]string{"dataType": "permissions"},
		})
	if err != nil {
		if apperr.StatusCode(err) == http.StatusInternalServerError {
			return nil, err
		}
		c.logger.Debugf("no producer data: %v", err)
		return nil, nil
	}
	if len(result.FunctionResult) == 0 {
		return nil, nil
	}
	var data producerData
	if err := json.Unmarshal(result.FunctionResult, &data); err != nil {
		return nil, nil
	}
	if len(data.Permissions) == 0 {
		return nil, nil
	}
	return data.Permissions, nil
}

// SubmitForm hands a contact or newsletter submission to the submitContactUs
// cloud script.
func (c *Client) SubmitForm(ctx context.Context, sessionToken string, form any) error {
	uri, err := c.endpoint(apiClient, routeExecuteCloudScript)
	if err != nil {
		return err
	}
	var resp model.PlayFabResponse[model.CloudScriptResult]
	err = utils.DoJSON(ctx, c.httpCli, http.MethodPost, uri,
		map[string]string{headerAuthorization: sessionToken},
		executeFunctionRequest{FunctionName: functionSubmitContactUs, FunctionParameter: form}, &resp)
	if err != nil {
		return err
	}
	result := resp.Data
	if resp.Code == http.StatusOK && len(result.FunctionResult) > 0 && string(result.FunctionResult) != "null" {
		return nil
	}
	msg := resp.ErrorMessage
	if result.Error != nil && result.Error.Message != "" {
		msg = result.Error.Message
	}
	if msg == "" {
		msg = apperr.MsgErrorOccurred
	}
	return apperr.Backend(resp.Code, msg)
}

// AddSubscriber adds the player behind entityToken to the marketing list.
// It never fails the caller; problems are only logged.
func (c *Client) AddSubscriber(ctx context.Context, entityToken string) {
	if c.conf.MarketingListId == "" {
		return
	}
	_, err := call[json.RawMessage](ctx, c, apiCloudScript, routeExecuteFunction,
		map[string]string{headerEntityToken: entityToken},
		executeFunctionRequest{
			FunctionName:      functionAddSubscriber,
			FunctionParameter: map[string]string{"listId": c.conf.MarketingListId},
		})
	if err != nil {
		c.logger.Errorf("add subscriber failed: %v", err)
		return
	}
	c.logger.Info("subscriber added to marketing list")
}
