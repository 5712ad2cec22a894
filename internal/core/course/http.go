package course

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
	router.Get("/", handler.listCourses)
	router.Post("/", handler.createCourse)
	router.Get("/{id}", handler.getCourse)
	router.Patch("/{id}", handler.updateCourse)
	router.Delete("/{id}", handler.deleteCourse)

	// Enrollment
	router.Get("/{id}/students", handler.courseStudents)
	router.Put("/{id}/students/{studentID}", handler.registerStudent)
	router.Delete("/{id}/students/{studentID}", handler.unregisterStudent)
}

// RegisterStudentRoutes mounts the course views that hang off the students
// subtree (a student's own course list).
func (handler *Handler) RegisterStudentRoutes(router chi.Router) {
	router.Get("/{id}/courses", handler.studentCourses)
}

// RegisterInstructorRoutes mounts the course views that hang off the
// instructors subtree (an instructor's assigned course list).
func (handler *Handler) RegisterInstructorRoutes(router chi.Router) {
	router.Get("/{id}/courses", handler.instructorCourses)
}

func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	courses, total, err := handler.service.ListCourses(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, courses, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")

	course, err := handler.service.GetCourse(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	var input Course
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCourse(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCourse(request.Context(), courseID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")

	if err := handler.service.DeleteCourse(request.Context(), courseID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) registerStudent(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")
	studentID := requestutil.ID(request, "studentID")

	if err := handler.service.RegisterStudent(request.Context(), courseID, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unregisterStudent(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")
	studentID := requestutil.ID(request, "studentID")

	if err := handler.service.UnregisterStudent(request.Context(), courseID, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) courseStudents(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.ID(request, "id")

	students, err := handler.service.CourseStudents(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, students)
}

func (handler *Handler) studentCourses(writer http.ResponseWriter, request *http.Request) {
	studentID := requestutil.ID(request, "id")

	courses, err := handler.service.StudentCourses(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, courses)
}

func (handler *Handler) instructorCourses(writer http.ResponseWriter, request *http.Request) {
	instructorID := requestutil.ID(request, "id")

	courses, err := handler.service.InstructorCourses(request.Context(), instructorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, courses)
}
