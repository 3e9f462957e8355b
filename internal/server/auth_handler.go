package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"showlink/internal/dao"
	"showlink/internal/model"
	"showlink/pkg/log"
)

// @Summary Login
// @Description Signs the player in on PlayFab and GameChat and returns the tokens for this API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dao.LoginRequest true "credentials"
// @Success 200 {object} dao.DataResponse{data=dao.LoginResponse}
// @Failure 400 {object} dao.ErrorResponse
// @Router /api/v1/auth/login [post]
func (s *Server) handleLogin(c *gin.Context) {
	var req dao.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	logger := log.GetLogger(ctx)

	login, err := s.playFab.LoginWithEmail(ctx, req.Email, req.Password)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	var (
		gameChatLogin *model.GameChatLogin
		permissions   model.ProducerPermissions
		profile       *model.PlayerProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		gameChatLogin, err = s.gameChat.LoginAndReturnSession(gctx, req.Email, req.Password)
		return err
	})
	g.Go(func() error {
		var err error
		permissions, err = s.playFab.GetProducerPermissions(gctx, login.SessionTicket)
		return err
	})
	g.Go(func() error {
		var err error
		if profile, err = s.playFab.GetPlayerProfile(gctx, login.SessionTicket, login.PlayFabId, nil); err != nil {
			logger.Warnf("load profile of %s failed: %v", login.PlayFabId, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.writeAppError(c, err)
		return
	}

	role := dao.RoleGuest
	if permissions != nil {
		role = dao.RoleProducer
	}
	claims := TokenClaims{
		GameChatToken:       gameChatLogin.SessionTicket,
		PlayFabId:           login.PlayFabId,
		PlayFabSessionToken: login.SessionTicket,
		EntityToken:         login.EntityToken.EntityToken,
		Email:               req.Email,
		Role:                role,
	}

	now := s.now()
	accessToken, err := SignToken(claims, s.conf.Jwt.Secret, s.conf.Jwt.ExpiresIn, now)
	if err != nil {
		s.writeAppError(c, err)
		return
	}
	refreshToken, err := SignToken(claims, s.conf.Jwt.RefreshSecret, s.conf.Jwt.RefreshExpiresIn, now)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	user := dao.UserSpec{
		PlayFabId: login.PlayFabId,
		Email:     req.Email,
		Role:      role,
	}
	if profile != nil {
		user.DisplayName = profile.DisplayName
		user.AvatarUrl = profile.AvatarUrl
	}
	logger.Infof("player %s signed in as %s", login.PlayFabId, role)

	c.JSON(http.StatusOK, dao.OK(dao.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}))
}

// @Summary Refresh the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dao.RefreshTokenRequest true "refresh token"
// @Success 200 {object} dao.DataResponse{data=dao.RefreshTokenResponse}
// @Failure 401 {object} dao.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (s *Server) handleRefreshToken(c *gin.Context) {
	var req dao.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	claims, err := ParseToken(req.RefreshToken, s.conf.Jwt.RefreshSecret, s.now)
	if err != nil {
		s.writeAppError(c, err)
		return
	}
	accessToken, err := SignToken(*claims, s.conf.Jwt.Secret, s.conf.Jwt.ExpiresIn, s.now())
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.OK(dao.RefreshTokenResponse{AccessToken: accessToken}))
}

// @Summary Send the password recovery email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dao.ForgotPasswordRequest true "account email"
// @Success 200 {object} dao.DataResponse
// @Router /api/v1/auth/forgot-password [post]
func (s *Server) handleForgotPassword(c *gin.Context) {
	var req dao.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	if err := s.playFab.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.OK(gin.H{}))
}
