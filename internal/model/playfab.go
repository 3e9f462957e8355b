package model

import "encoding/json"

// PlayFabResponse is the envelope every PlayFab API answers with.
type PlayFabResponse[T any] struct {
	Code         int    `json:"code"`
	Status       string `json:"status"`
	Data         T      `json:"data"`
	Error        string `json:"error,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type EntityToken struct {
	EntityToken     string `json:"EntityToken"`
	TokenExpiration string `json:"TokenExpiration"`
}

type PlayFabLogin struct {
	PlayFabId     string      `json:"PlayFabId"`
	SessionTicket string      `json:"SessionTicket"`
	NewlyCreated  bool        `json:"NewlyCreated"`
	EntityToken   EntityToken `json:"EntityToken"`
}

type PlayerStatistic struct {
	Name    string `json:"Name"`
	Value   int    `json:"Value"`
	Version int    `json:"Version"`
}

type ContactEmail struct {
	EmailAddress      string `json:"EmailAddress"`
	Name              string `json:"Name"`
	VerificationState string `json:"VerificationStatus"`
}

type PlayerProfile struct {
	PlayerId              string            `json:"PlayerId"`
	TitleId               string            `json:"TitleId"`
	DisplayName           string            `json:"DisplayName"`
	AvatarUrl             string            `json:"AvatarUrl"`
	Statistics            []PlayerStatistic `json:"Statistics,omitempty"`
	ContactEmailAddresses []ContactEmail    `json:"ContactEmailAddresses,omitempty"`
}

type ProfileConstraints struct {
	ShowContactEmailAddresses bool `json:"ShowContactEmailAddresses,omitempty"`
	ShowDisplayName           bool `json:"ShowDisplayName,omitempty"`
	ShowAvatarUrl             bool `json:"ShowAvatarUrl,omitempty"`
	ShowStatistics            bool `json:"ShowStatistics,omitempty"`
}

type PlayFabFriendProfile struct {
	AvatarUrl   string `json:"AvatarUrl"`
	DisplayName string `json:"DisplayName"`
}

type PlayFabFriend struct {
	FriendPlayFabId  string                `json:"FriendPlayFabId"`
	Username         string                `json:"Username"`
	TitleDisplayName string                `json:"TitleDisplayName"`
	Tags             []string              `json:"Tags,omitempty"`
	Profile          *PlayFabFriendProfile `json:"Profile,omitempty"`
	ActiveShowId     string                `json:"ActiveShowId,omitempty"`
}

type CloudScriptError struct {
	Error      string `json:"Error"`
	Message    string `json:"Message"`
	StackTrace string `json:"StackTrace"`
}

type CloudScriptResult struct {
	FunctionName   string            `json:"FunctionName"`
	FunctionResult json.RawMessage   `json:"FunctionResult"`
	Error          *CloudScriptError `json:"Error,omitempty"`
}

// ProducerPermissions is what the getProducerData cloud script returns for
// dataType=permissions.
type ProducerPermissions map[string]any
