package model

// GameSession is a session record as returned by the GameChat backend.
type GameSession struct {
	Id                        string            `json:"id"`
	ChatSections              []ChatSection     `json:"chatSections,omitempty"`
	AdminAnnouncement         string            `json:"adminAnnouncement,omitempty"`
	TimeCreated               string            `json:"timeCreated,omitempty"`
	TimeStarted               *string           `json:"timeStarted"`
	TimeStopped               *string           `json:"timeStopped"`
	TimeEnded                 *string           `json:"timeEnded"`
	TotalConnections          int               `json:"totalConnections"`
	OpenedForJoining          bool              `json:"openedForJoining"`
	UserStarted               *GameChatUser     `json:"userStarted,omitempty"`
	UserStartedId             int               `json:"userStartedId,omitempty"`
	SuperAdmins               *string           `json:"superAdmins"`
	SuperAdminsEmails         []string          `json:"superAdminsEmails,omitempty"`
	Admins                    *string           `json:"admins"`
	AutoApprove               bool              `json:"autoApprove"`
	Status                    string            `json:"status"`
	GoogleId                  *string           `json:"googleId"`
	Genre                     *string           `json:"genre"`
	SchedulePerformanceId     *string           `json:"schedulePerformanceId"`
	LastTotemQuery            *string           `json:"lastTotemQuery"`
	YoutubeThumbnail          string            `json:"youtubeThumbnail"`
	StreamTitle               string            `json:"streamTitle"`
	StreamDescription         string            `json:"streamDescription"`
	StreamPlatformProfileName string            `json:"streamPlatformProfileName"`
	TargetArtistDisplayName   string            `json:"targetArtistDisplayName"`
	TargetArtist              *TargetArtistInfo `json:"targetArtist,omitempty"`
	AltId                     int               `json:"altId,omitempty"`
}

type TargetArtistInfo struct {
	PlayFabId   string `json:"playFabId"`
	DisplayName string `json:"displayName"`
}

type GameChatUser struct {
	Id                        string  `json:"id"`
	Email                     string  `json:"email"`
	Username                  string  `json:"username"`
	AvatarUri                 string  `json:"avatarUri"`
	AdministratingGameSession *string `json:"administratingGameSession"`
}

type ChatSection struct {
	Id            int        `json:"id"`
	GameSessionId string     `json:"gameSessionId"`
	ChatRooms     []ChatRoom `json:"chatRooms,omitempty"`
}

type ChatRoom struct {
	ChatSectionId          int    `json:"chatSectionId"`
	Uid                    string `json:"uid"`
	GridPlacement          string `json:"gridPlacement"`
	TotalActiveConnections string `json:"totalActiveConnections"`
	Votes                  []Vote `json:"votes,omitempty"`
}

type Vote struct {
	GameSessionId string        `json:"gameSessionId"`
	Id            string        `json:"id"`
	VoteStarted   string        `json:"voteStarted"`
	VoteEnded     string        `json:"voteEnded"`
	TotalVotes    string        `json:"totalVotes"`
	UserStarted   *GameChatUser `json:"userStarted,omitempty"`
	IsVoteActive  bool          `json:"isVoteActive"`
	Images        []VoteImage   `json:"images,omitempty"`
}

type VoteImage struct {
	Id         string        `json:"id"`
	UserPosted *GameChatUser `json:"userPosted,omitempty"`
}

// GameChatLogin is the session ticket handed out by the GameChat auth route.
type GameChatLogin struct {
	SessionTicket string `json:"sessionTicket"`
	UserId        string `json:"userId,omitempty"`
}
