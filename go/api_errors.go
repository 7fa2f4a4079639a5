package shopserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/Apurer/go-gin-shop-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError maps a status code to an RFC 7807 response.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// parseUUIDParam reads a path parameter as a UUID, responding with a 400
// problem on failure. The bool reports whether parsing succeeded.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery reads a query parameter as a UUID, responding with a 400
// problem on failure.
func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

// parseRawUUID parses an already-extracted path segment, responding with a
// 400 problem on failure.
func parseRawUUID(c *gin.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return uuid.Nil, err
	}
	return id, nil
}

// bindFloatQuery parses a required float query parameter into dst.
func bindFloatQuery(c *gin.Context, name string, dst *float64) error {
	raw := c.Query(name)
	if raw == "" {
		return fmt.Errorf("query parameter %q is required", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("query parameter %q must be a number: %w", name, err)
	}
	*dst = value
	return nil
}
