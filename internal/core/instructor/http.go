package instructor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/registra-app/registra/internal/platform/request"
	"github.com/registra-app/registra/internal/platform/respond"
	"github.com/registra-app/registra/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listInstructors)
	router.Post("/", handler.createInstructor)
	router.Get("/{id}", handler.getInstructor)
	router.Patch("/{id}", handler.updateInstructor)
	router.Delete("/{id}", handler.deleteInstructor)
}

func (handler *Handler) listInstructors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	instructors, total, err := handler.service.ListInstructors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, instructors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getInstructor(writer http.ResponseWriter, request *http.Request) {
	instructorID := requestutil.ID(request, "id")

	instructor, err := handler.service.GetInstructor(request.Context(), instructorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, instructor)
}

func (handler *Handler) createInstructor(writer http.ResponseWriter, request *http.Request) {
	var input Instructor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateInstructor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateInstructor(writer http.ResponseWriter, request *http.Request) {
	instructorID := requestutil.ID(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateInstructor(request.Context(), instructorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteInstructor(writer http.ResponseWriter, request *http.Request) {
	instructorID := requestutil.ID(request, "id")

	if err := handler.service.DeleteInstructor(request.Context(), instructorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
