package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"showlink/internal/apperr"
	"showlink/internal/dao"
	"showlink/internal/model"
	"showlink/internal/utils"
	"showlink/pkg/log"
)

const (
	avatarFolder  = "users/"
	maxAvatarSize = 5 << 20
)

// @Summary Profile of the signed in player
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dao.DataResponse{data=dao.ProfileSpec}
// @Failure 401 {object} dao.ErrorResponse
// @Router /api/v1/users/profile [get]
func (s *Server) handleGetProfile(c *gin.Context) {
	claims := getClaims(c)
	profile, err := s.playFab.GetPlayerProfile(c.Request.Context(), claims.PlayFabSessionToken, claims.PlayFabId, nil)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.OK(dao.ToProfileSpec(profile)))
}

// @Summary Friends of the signed in player
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dao.DataResponse{data=[]dao.FriendSpec}
// @Router /api/v1/users/friends [get]
func (s *Server) handleListFriends(c *gin.Context) {
	claims := getClaims(c)
	friends, err := s.playFab.GetFriendsList(c.Request.Context(), claims.PlayFabSessionToken)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.OK(dao.ToFriendSpecs(friends)))
}

// @Summary Upload a new avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image"
// @Success 200 {object} dao.DataResponse{data=dao.UploadAvatarResponse}
// @Failure 400 {object} dao.ErrorResponse
// @Router /api/v1/users/avatar [post]
func (s *Server) handleUploadAvatar(c *gin.Context) {
	if s.objects == nil {
		s.writeAppError(c, apperr.New(http.StatusForbidden, apperr.MsgMissingStorage))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if fh.Size > maxAvatarSize {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("file is larger than %d bytes", maxAvatarSize))
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = utils.ContentTypeByExt(fh.Filename)
	}
	if !utils.IsImageContentType(contentType) {
		s.writeError(c, http.StatusUnsupportedMediaType, apperr.New(http.StatusUnsupportedMediaType, apperr.MsgUnsupportedMediaType))
		return
	}

	file, err := fh.Open()
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	claims := getClaims(c)
	fileName := avatarFolder + uuid.New().String() + fh.Filename
	if err := s.objects.Upload(ctx, fileName, file, fh.Size, contentType); err != nil {
		s.writeAppError(c, err)
		return
	}

	avatarUrl := s.conf.S3.UrlPrefix() + "/" + fileName
	if err := s.playFab.UpdateAvatarUrl(ctx, claims.PlayFabId, avatarUrl); err != nil {
		s.writeAppError(c, err)
		return
	}
	log.GetLogger(ctx).Infof("avatar of %s set to %s", claims.PlayFabId, fileName)

	c.JSON(http.StatusOK, dao.OK(dao.UploadAvatarResponse{FileName: fileName, AvatarUrl: avatarUrl}))
}

// @Summary Permissions of the signed in producer
// @Tags producer
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dao.DataResponse
// @Failure 401 {object} dao.ErrorResponse
// @Router /api/v1/producer/permissions [get]
func (s *Server) handleGetProducerPermissions(c *gin.Context) {
	claims := getClaims(c)
	permissions, err := s.playFab.GetProducerPermissions(c.Request.Context(), claims.PlayFabSessionToken)
	if err != nil {
		s.writeAppError(c, err)
		return
	}
	if permissions == nil {
		permissions = model.ProducerPermissions{}
	}

	c.JSON(http.StatusOK, dao.OK(permissions))
}
