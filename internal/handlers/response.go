package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/requestdata"
)

type APIError struct {
  Message string  `json:"message"`
  Code    string  `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError  `json:"error"`
}

// RespondError is the single funnel every handler routes failures through.
// apierr-tagged errors keep their status; everything else is a generic 500.
func RespondError(c *gin.Context, err error) {
  var ae *apierr.Error
  if errors.As(err, &ae) {
    c.JSON(ae.Status, ErrorEnvelope{Error: APIError{Message: ae.Error(), Code: ae.Code}})
    return
  }
  msg := "an error occurred while processing your request"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: APIError{Message: msg, Code: "internal_error"}})
}

func RespondBadRequest(c *gin.Context, err error) {
  msg := "invalid request body"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: msg, Code: "invalid_request"}})
}

// CallerID pulls the authenticated identity set by the auth middleware.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
    return uuid.Nil, false
  }
  return rd.UserID, true
}
