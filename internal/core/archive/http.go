package archive

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/registra-app/registra/internal/platform/request"
	"github.com/registra-app/registra/internal/platform/respond"
	"github.com/registra-app/registra/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/backup", handler.backup)
	router.Post("/export", handler.exportJSON)
	router.Post("/import", handler.importJSON)
	router.Get("/export.csv", handler.exportCSV)
}

type pathRequest struct {
	Destination string `json:"destination"`
}

type importRequest struct {
	Source string `json:"source"`
}

type pathResponse struct {
	Path string `json:"path"`
}

func (handler *Handler) backup(writer http.ResponseWriter, request *http.Request) {
	var input pathRequest
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	path, err := handler.service.Backup(request.Context(), input.Destination)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, pathResponse{Path: path})
}

func (handler *Handler) exportJSON(writer http.ResponseWriter, request *http.Request) {
	var input pathRequest
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	path, err := handler.service.ExportJSON(request.Context(), input.Destination)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, pathResponse{Path: path})
}

func (handler *Handler) importJSON(writer http.ResponseWriter, request *http.Request) {
	var input importRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Source == "" {
		respond.Error(writer, request, validate.RequiredError("source", "This field is required"))
		return
	}

	summary, err := handler.service.ImportJSON(request.Context(), input.Source)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) exportCSV(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "text/csv; charset=utf-8")
	writer.Header().Set("Content-Disposition", `attachment; filename="registra_export.csv"`)

	if err := handler.service.ExportCSV(request.Context(), writer); err != nil {
		// Headers may already be gone; log via the standard error path.
		respond.Error(writer, request, err)
		return
	}
}
