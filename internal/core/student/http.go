package student

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
	router.Get("/", handler.listStudents)
	router.Post("/", handler.createStudent)
	router.Get("/{id}", handler.getStudent)
	router.Patch("/{id}", handler.updateStudent)
	router.Delete("/{id}", handler.deleteStudent)
}

func (handler *Handler) listStudents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	students, total, err := handler.service.ListStudents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, students, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStudent(writer http.ResponseWriter, request *http.Request) {
	studentID := requestutil.ID(request, "id")

	student, err := handler.service.GetStudent(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) createStudent(writer http.ResponseWriter, request *http.Request) {
	var input Student
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateStudent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateStudent(writer http.ResponseWriter, request *http.Request) {
	studentID := requestutil.ID(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateStudent(request.Context(), studentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteStudent(writer http.ResponseWriter, request *http.Request) {
	studentID := requestutil.ID(request, "id")

	if err := handler.service.DeleteStudent(request.Context(), studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
