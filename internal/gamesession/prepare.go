package gamesession

import (
	"fmt"
	"strings"

	"showlink/internal/model"
)

const (
	youtubeIdPrefix     = "yt-"
	YoutubeThumbnailUrl = "https://img.youtube.com/vi"
	youtubeQualityMax   = "maxresdefault"
	thumbnailFormat     = "jpg"
)

func ThumbnailUrl(videoId string) string {
	return fmt.Sprintf("%s/%s/%s.%s", YoutubeThumbnailUrl, videoId, youtubeQualityMax, thumbnailFormat)
}

// StreamUri is the backend identifier of the session whose video id is videoId.
func StreamUri(videoId string) string {
	return youtubeIdPrefix + videoId
}

// PrepareSessions strips the stream prefix from every id, attaches the
// thumbnail url and, if ignoreNoConnection is set, drops sessions nobody is
// connected to.
func PrepareSessions(sessions []*model.GameSession, ignoreNoConnection bool) []*model.GameSession {
	prepared := make([]*model.GameSession, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		s.Id = strings.TrimPrefix(s.Id, youtubeIdPrefix)
		s.YoutubeThumbnail = ThumbnailUrl(s.Id)
		if ignoreNoConnection && s.TotalConnections <= 0 {
			continue
		}
		prepared = append(prepared, s)
	}
	return prepared
}
