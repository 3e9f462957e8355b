package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"showlink/internal/dao"
	"showlink/pkg/log"
)

// @Summary Submit the contact or newsletter form
// @Tags contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dao.SubmissionFormRequest true "form"
// @Success 200 {object} dao.DataResponse
// @Failure 400 {object} dao.ErrorResponse
// @Router /api/v1/contacts/submission [post]
func (s *Server) handleSubmissionForm(c *gin.Context) {
	var req dao.SubmissionFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	logger := log.GetLogger(ctx)
	claims := getClaims(c)

	if err := s.playFab.SubmitForm(ctx, claims.PlayFabSessionToken, &req); err != nil {
		s.writeAppError(c, err)
		return
	}

	if req.Type == dao.SubmissionNewsletter && claims.EntityToken != "" {
		s.playFab.AddSubscriber(ctx, claims.EntityToken)
	}

	if s.publisher != nil {
		lead := dao.ToLead(uuid.New().String(), &req, s.now())
		// the form is already stored upstream, a lost lead only misses the sheet
		if err := s.publisher.PublishLead(lead); err != nil {
			logger.WithError(err).Errorf("publish lead %s failed", lead.Id)
		}
	}

	c.JSON(http.StatusOK, dao.OK(gin.H{}))
}
