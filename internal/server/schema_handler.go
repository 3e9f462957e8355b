package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"showlink/internal/dao"
)

// request bodies whose JSON schema is published for the front ends
var requestSchemas = map[string]any{
	"login":           &dao.LoginRequest{},
	"refresh-token":   &dao.RefreshTokenRequest{},
	"forgot-password": &dao.ForgotPasswordRequest{},
	"search-sessions": &dao.SearchSessionsRequest{},
	"submission-form": &dao.SubmissionFormRequest{},
}

func reflectSchema(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return r.Reflect(v)
}

// @Summary JSON schema of a request body
// @Tags schemas
// @Produce json
// @Param name path string true "login, refresh-token, forgot-password, search-sessions or submission-form"
// @Success 200 {object} object
// @Failure 404 {object} dao.ErrorResponse
// @Router /api/v1/schemas/{name} [get]
func (s *Server) handleGetSchema(c *gin.Context) {
	name := c.Param("name")
	v, ok := requestSchemas[name]
	if !ok {
		s.writeError(c, http.StatusNotFound, fmt.Errorf("schema %s not found", name))
		return
	}
	c.JSON(http.StatusOK, reflectSchema(v))
}
