package controllers

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"carrental/pkg/resp"
	"carrental/services"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// mapServiceError writes the matching HTTP response for an expected service
// failure; anything unrecognized becomes a 500.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrCarNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrAdminProtected):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRole):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrLicenseTaken):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// decodeDataURL splits a "data:image/...;base64,...." payload into raw bytes
// and the content type.
func decodeDataURL(s string) ([]byte, string, error) {
	if !strings.HasPrefix(s, "data:image/") {
		return nil, "", errors.New("invalid image format")
	}
	head, body, ok := strings.Cut(s, ",")
	if !ok {
		return nil, "", errors.New("invalid data url")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, "", err
	}
	return raw, contentType, nil
}
