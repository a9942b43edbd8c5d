package httperr

import (
	"net/http"

	"runesse/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "internal server error"

// Response is the failure envelope shared by every route.
type Response struct {
	Status int    `json:"-"`
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
}

// AbortWithError records err on the context for logging and writes {ok:false,error:msg}.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err's category to a status. Uncategorised errors become a generic 500
// so store details never reach the client.
func Abort(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = InternalMessage
	}
	AbortWithError(c, status, err, msg)
}

func StatusFor(err error) int {
	switch errs.Category(err) {
	case errs.ErrValidation, errs.ErrInvalidState:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
