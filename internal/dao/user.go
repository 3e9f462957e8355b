package dao

import (
	"showlink/internal/model"
)

const (
	RoleGuest    = "Guest"
	RoleProducer = "Producer"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type LoginResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserSpec `json:"user"`
}

type UserSpec struct {
	PlayFabId   string `json:"playFabId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarUrl   string `json:"avatarUrl"`
	Role        string `json:"role"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ProfileSpec struct {
	PlayFabId   string         `json:"playFabId"`
	DisplayName string         `json:"displayName"`
	AvatarUrl   string         `json:"avatarUrl"`
	Email       string         `json:"email"`
	Statistics  map[string]int `json:"statistics"`
	Emails      []string       `json:"emails,omitempty"`
}

func ToProfileSpec(p *model.PlayerProfile) *ProfileSpec {
	if p == nil {
		return nil
	}
	spec := &ProfileSpec{
		PlayFabId:   p.PlayerId,
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarUrl,
		Statistics:  make(map[string]int, len(p.Statistics)),
	}
	for _, s := range p.Statistics {
		spec.Statistics[s.Name] = s.Value
	}
	for _, e := range p.ContactEmailAddresses {
		if e.EmailAddress == "" {
			continue
		}
		spec.Emails = append(spec.Emails, e.EmailAddress)
	}
	if len(spec.Emails) > 0 {
		spec.Email = spec.Emails[0]
	}
	return spec
}

type FriendSpec struct {
	FriendId     string `json:"friendId"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	AvatarUrl    string `json:"avatarUrl"`
	ActiveShowId string `json:"activeShowId,omitempty"`
}

func ToFriendSpec(f *model.PlayFabFriend) FriendSpec {
	spec := FriendSpec{
		FriendId:     f.FriendPlayFabId,
		Username:     f.Username,
		DisplayName:  f.TitleDisplayName,
		ActiveShowId: f.ActiveShowId,
	}
	if f.Profile != nil {
		spec.AvatarUrl = f.Profile.AvatarUrl
	}
	return spec
}

func ToFriendSpecs(friends []model.PlayFabFriend) []FriendSpec {
	specs := make([]FriendSpec, 0, len(friends))
	for i := range friends {
		specs = append(specs, ToFriendSpec(&friends[i]))
	}
	return specs
}

type UploadAvatarResponse struct {
	FileName  string `json:"fileName"`
	AvatarUrl string `json:"avatarUrl"`
}
