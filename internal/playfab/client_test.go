package playfab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"showlink/internal/apperr"
	"showlink/internal/config"
	"showlink/internal/model"
)

type recorded struct {
	path    string
	headers http.Header
	body    map[string]json.RawMessage
}

func newTestClient(t *testing.T, conf config.PlayFabConfig, handle func(path string, body map[string]json.RawMessage) (int, any)) (*Client, *[]recorded) {
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, recorded{path: r.URL.Path, headers: r.Header.Clone(), body: body})
		code, resp := handle(r.URL.Path, body)
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	if conf.TitleId == "" {
		conf.TitleId = "T1"
	}
	cli := NewClient(conf, logrus.NewEntry(logrus.New())).WithBaseUrl(srv.URL, srv.Client())
	return cli, &calls
}

func ok(data any) map[string]any {
	return map[string]any{"code": 200, "status": "OK", "data": data}
}

func TestEndpoint(t *testing.T) {
	cli := NewClient(config.PlayFabConfig{TitleId: "ABCD", Endpoint: "playfabapi.com"}, logrus.NewEntry(logrus.New()))
	uri, err := cli.endpoint(apiServer, routeUpdateAvatarUrl)
	if err != nil || uri != "https://ABCD.playfabapi.com/Server/UpdateAvatarUrl" {
		t.Errorf("endpoint() = %q, %v", uri, err)
	}

	missing := NewClient(config.PlayFabConfig{Endpoint: "playfabapi.com"}, logrus.NewEntry(logrus.New()))
	if _, err := missing.LoginWithEmail(context.Background(), "a@b.c", "pw"); err == nil || err.Error() != apperr.MsgMissingPlayFab {
		t.Errorf("expected missing credentials error, got %v", err)
	}
}

func TestLoginWithEmail(t *testing.T) {
	cli, calls := newTestClient(t, config.PlayFabConfig{}, func(path string, body map[string]json.RawMessage) (int, any) {
		if string(body["Password"]) != `"secret"` {
			return http.StatusBadRequest, map[string]any{"code": 400, "status": "BadRequest", "errorMessage": "Invalid email address or password"}
		}
		return http.StatusOK, ok(model.PlayFabLogin{PlayFabId: "P1", SessionTicket: "ticket", EntityToken: model.EntityToken{EntityToken: "entity"}})
	})

	login, err := cli.LoginWithEmail(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("LoginWithEmail() error = %v", err)
	}
	if login.PlayFabId != "P1" || login.EntityToken.EntityToken != "entity" {
		t.Errorf("unexpected login %+v", login)
	}
	if c := (*calls)[0]; c.path != "/Client/LoginWithEmailAddress" || string(c.body["TitleId"]) != `"T1"` {
		t.Errorf("unexpected call %+v", c)
	}

	_, err = cli.LoginWithEmail(context.Background(), "a@b.c", "bad")
	if apperr.StatusCode(err) != http.StatusBadRequest || err.Error() != "Invalid email address or password" {
		t.Errorf("expected 400 from backend, got %v", err)
	}
}

func TestForgotPassword(t *testing.T) {
	handle := func(string, map[string]json.RawMessage) (int, any) { return http.StatusOK, ok(map[string]any{}) }

	cli, _ := newTestClient(t, config.PlayFabConfig{SecretKey: "s3"}, handle)
	if err := cli.ForgotPassword(context.Background(), "a@b.c"); apperr.StatusCode(err) != http.StatusUnauthorized {
		t.Errorf("missing template should be rejected, got %v", err)
	}

	cli, calls := newTestClient(t, config.PlayFabConfig{SecretKey: "s3", EmailTemplateId: "tpl"}, handle)
	if err := cli.ForgotPassword(context.Background(), "a@b.c"); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}
	c := (*calls)[0]
	if c.path != "/Server/SendCustomAccountRecoveryEmail" || c.headers.Get("X-SecretKey") != "s3" || string(c.body["EmailTemplateId"]) != `"tpl"` {
		t.Errorf("unexpected call %+v", c)
	}
}

func TestGetPlayerProfile_MergesConstraints(t *testing.T) {
	cli, calls := newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusOK, ok(map[string]any{"PlayerProfile": model.PlayerProfile{PlayerId: "P1", DisplayName: "Pat"}})
	})

	p, err := cli.GetPlayerProfile(context.Background(), "ticket", "P1", nil)
	if err != nil || p.DisplayName != "Pat" {
		t.Fatalf("GetPlayerProfile() = %+v, %v", p, err)
	}
	c := (*calls)[0]
	if c.headers.Get("X-Authorization") != "ticket" {
		t.Errorf("missing session header")
	}
	var constraints model.ProfileConstraints
	_ = json.Unmarshal(c.body["ProfileConstraints"], &constraints)
	if constraints != DefaultProfileConstraints {
		t.Errorf("constraints = %+v", constraints)
	}
}

func TestGetFriendsList(t *testing.T) {
	cli, _ := newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusOK, ok(map[string]any{"Friends": []model.PlayFabFriend{{FriendPlayFabId: "F1"}, {FriendPlayFabId: "F2"}}})
	})
	friends, err := cli.GetFriendsList(context.Background(), "ticket")
	if err != nil || len(friends) != 2 || friends[1].FriendPlayFabId != "F2" {
		t.Errorf("GetFriendsList() = %+v, %v", friends, err)
	}
}

func TestGetProducerPermissions(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   bool
	}{
		{"producer", map[string]any{"permissions": map[string]any{"canSchedule": true}}, true},
		{"no permissions", map[string]any{}, false},
		{"null result", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, calls := newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
				return http.StatusOK, ok(map[string]any{"FunctionName": "getProducerData", "FunctionResult": tt.result})
			})
			perms, err := cli.GetProducerPermissions(context.Background(), "ticket")
			if err != nil {
				t.Fatalf("GetProducerPermissions() error = %v", err)
			}
			if (perms != nil) != tt.want {
				t.Errorf("permissions = %v, want present=%v", perms, tt.want)
			}
			if string((*calls)[0].body["FunctionName"]) != `"getProducerData"` {
				t.Errorf("unexpected function %s", (*calls)[0].body["FunctionName"])
			}
		})
	}
}

func TestSubmitForm(t *testing.T) {
	cli, _ := newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusOK, ok(map[string]any{"FunctionResult": true})
	})
	if err := cli.SubmitForm(context.Background(), "ticket", map[string]string{"type": "newsletter"}); err != nil {
		t.Errorf("SubmitForm() error = %v", err)
	}

	cli, _ = newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusOK, ok(map[string]any{"FunctionResult": nil, "Error": map[string]any{"Message": "form rejected"}})
	})
	err := cli.SubmitForm(context.Background(), "ticket", map[string]string{})
	if err == nil || err.Error() != "form rejected" {
		t.Errorf("expected script error, got %v", err)
	}
}

func TestAddSubscriber(t *testing.T) {
	cli, calls := newTestClient(t, config.PlayFabConfig{}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusOK, ok(nil)
	})
	cli.AddSubscriber(context.Background(), "entity")
	if len(*calls) != 0 {
		t.Errorf("no marketing list configured, expected no call")
	}

	cli, calls = newTestClient(t, config.PlayFabConfig{MarketingListId: "list"}, func(string, map[string]json.RawMessage) (int, any) {
		return http.StatusInternalServerError, map[string]any{"code": 500, "errorMessage": "boom"}
	})
	cli.AddSubscriber(context.Background(), "entity")
	if len(*calls) != 1 || (*calls)[0].path != "/CloudScript/ExecuteFunction" || (*calls)[0].headers.Get("X-EntityToken") != "entity" {
		t.Errorf("unexpected calls %+v", *calls)
	}
}
