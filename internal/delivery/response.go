package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

// ErrorView mirrors what the error page renders: a title, a message and
// the path to continue browsing from.
type ErrorView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func errorStatus(err error) int {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case domain.KindNotFound:
			return http.StatusNotFound
		case domain.KindValidation:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func invalidIDError(entity, raw string) *domain.Error {
	return domain.ValidationError("Invalid "+entity+" ID",
		"the "+entity+" ID must be a positive integer, got "+strconv.Quote(raw))
}

// ErrorPage renders a descriptive error view for tagged domain errors
// and a generic 500 view for everything else. Unexpected failures are
// logged with their cause; the cause never reaches the client.
func ErrorPage(c *gin.Context, log *logrus.Logger, err error, path string) {
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Kind != domain.KindServer {
		c.JSON(errorStatus(err), Response{
			Status:  "Fail",
			Message: derr.Title,
			Data:    ErrorView{Title: derr.Title, Message: derr.Message, Path: path},
		})
		return
	}

	log.Errorf("Handler Error: unexpected failure: %v", err)
	c.JSON(http.StatusInternalServerError, Response{
		Status:  "Fail",
		Message: "Internal server error",
		Data: ErrorView{
			Title:   "Internal server error",
			Message: "something went wrong, please try again later",
			Path:    path,
		},
	})
}
