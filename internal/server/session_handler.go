package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"showlink/internal/dao"
	"showlink/internal/gamesession"
	"showlink/pkg/log"
)

// @Summary Random game sessions
// @Description Samples sessions over every requested status and shuffles them
// @Tags game-sessions
// @Produce json
// @Param startedFrom query string false "ISO8601 date"
// @Param startedTo query string false "ISO8601 date"
// @Param status query string false "comma separated list of Pending, Live, Past"
// @Param limit query int false "maximum number of sessions, 5 by default"
// @Param ignoreNoConnection query string false "true to skip sessions nobody is connected to"
// @Success 200 {object} dao.SessionListResponse
// @Failure 400 {object} dao.ErrorResponse
// @Router /api/v1/game-sessions/random [get]
func (s *Server) handleRandomSearch(c *gin.Context) {
	var req dao.RandomSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	filter, err := gamesession.ResolveFilter(req.RawFilter(), req.IgnoresNoConnection(), s.now)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	ctx := c.Request.Context()
	options := []gamesession.Option{gamesession.WithLogger(log.GetLogger(ctx))}
	if s.intN != nil {
		options = append(options, gamesession.WithIntN(s.intN))
	}
	aggregator := gamesession.NewAggregator(s.gameChat, options...)

	limit := req.LimitOr(s.conf.RandomSearch.DefaultLimit)
	result, err := aggregator.Aggregate(ctx, filter, limit)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.ToSessionListResponse(result))
}

// @Summary Search game sessions
// @Tags game-sessions
// @Accept json
// @Produce json
// @Param request body dao.SearchSessionsRequest true "filter and page"
// @Success 200 {object} dao.PagedSessionListResponse
// @Failure 400 {object} dao.ErrorResponse
// @Router /api/v1/game-sessions/search [post]
func (s *Server) handleSearchSessions(c *gin.Context) {
	var req dao.SearchSessionsRequest
	// an empty body searches everything
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	result, err := s.gameChat.SearchGameSessions(c.Request.Context(), &req)
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.ToPagedSessionListResponse(&req, result))
}

// @Summary Get a game session
// @Tags game-sessions
// @Produce json
// @Param session_id path string true "video id of the session"
// @Success 200 {object} dao.DataResponse
// @Failure 404 {object} dao.ErrorResponse
// @Router /api/v1/game-sessions/{session_id} [get]
func (s *Server) handleGetSession(c *gin.Context) {
	session, err := s.gameChat.GetGameSessionById(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		s.writeAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dao.OK(session))
}
