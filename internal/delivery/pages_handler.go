package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PagesHandler serves the static storefront pages.
type PagesHandler struct {
	log *logrus.Logger
}

func NewPagesHandler(logger *logrus.Logger) *PagesHandler {
	return &PagesHandler{log: logger}
}

type pageView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var staticPages = map[string]pageView{
	"/about": {
		Title: "About us",
		Body:  "Full Stock is a small storefront for mugs, shirts and posters.",
	},
	"/terms": {
		Title: "Terms and conditions",
		Body:  "Orders are final once confirmed. Prices include taxes.",
	},
	"/privacy": {
		Title: "Privacy policy",
		Body:  "We only store the details you submit at checkout.",
	},
}

func (h *PagesHandler) RegisterRoutes(router gin.IRouter) {
	for path, view := range staticPages {
		page := view
		router.GET(path, func(c *gin.Context) {
			SuccessResponse(c, http.StatusOK, "Static page", page)
		})
	}
}
