package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tourism-backend/apperrors"
	"tourism-backend/dto"
	"tourism-backend/utils"
)

// parseID reads a positive numeric id from the given raw value and writes
// a 400 when it is not one.
func parseID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func paramID(c *gin.Context) (uint, bool) {
	return parseID(c, c.Param("id"))
}

// bindJSON binds and validates the body, answering 400 with the first
// validation message on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		log.Ctx(c.Request.Context()).Debug().Err(err).Str("path", c.FullPath()).Msg("payload rejected")
		utils.JSONError(c, http.StatusBadRequest, dto.BindingMessage(err))
		return false
	}
	return true
}

// respondError maps service errors to a status. Internal errors are logged
// and replaced by a generic message.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
		_ = c.Error(err)
		utils.JSONInternalError(c, status)
		return
	}
	utils.JSONError(c, status, appErr.Message)
}
