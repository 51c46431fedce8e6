package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies service failures so every controller can hand its error
// to Respond instead of picking a status itself.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindAuth
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// Respond is the single taxonomy-to-transport translation point. NotFound
// and Validation use a "message" body, everything else an "error" body,
// matching the service's response shapes.
func Respond(c *gin.Context, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = Internal(err)
	}

	switch ae.Kind {
	case KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": ae.Message})
	case KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"message": ae.Message})
	case KindAuth:
		c.JSON(http.StatusUnauthorized, gin.H{"error": ae.Message})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": ae.Error()})
	}
}
