package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/registra-app/registra/internal/platform/request"
	"github.com/registra-app/registra/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
	router.Get("/search/{entity}", handler.searchEntity)
	router.Get("/stats", handler.statistics)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("q")

	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, results)
}

func (handler *Handler) searchEntity(writer http.ResponseWriter, request *http.Request) {
	entity := Entity(requestutil.Param(request, "entity"))

	// Every query parameter becomes a column filter; the service rejects
	// anything outside the allow-list.
	filters := make(map[string]string)
	for key, values := range request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	results, err := handler.service.SearchEntity(request.Context(), entity, filters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, results)
}

func (handler *Handler) statistics(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Statistics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
