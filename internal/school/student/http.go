package student

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minhvu-dev/eduka/internal/platform/middleware"
	requestutil "github.com/minhvu-dev/eduka/internal/platform/request"
	"github.com/minhvu-dev/eduka/internal/platform/respond"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
	"github.com/minhvu-dev/eduka/internal/platform/validate"
	"github.com/minhvu-dev/eduka/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Authenticated reads
	router.Get("/", handler.listStudents)
	router.Get("/active", handler.listActiveStudents)
	router.Get("/{id}", handler.getStudent)
	router.Get("/{id}/enrollments", handler.getStudentWithEnrollments)

	// Staff only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireRole(sec.RoleTeacher))

		staffRoute.Post("/", handler.createStudent)
		staffRoute.Patch("/{id}", handler.updateStudent)

		// Admin strict only
		staffRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteStudent)
	})
}

type createStudentRequest struct {
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`
}

type updateStudentRequest struct {
	FullName string `json:"full_name"`
}

func (handler *Handler) listStudents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	profiles, total, err := handler.service.ListStudents(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, profiles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listActiveStudents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	profiles, total, err := handler.service.ListActiveStudents(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, profiles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetStudent(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) getStudentWithEnrollments(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetStudentWithEnrollments(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) createStudent(writer http.ResponseWriter, request *http.Request) {
	var input createStudentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	profile, err := handler.service.CreateStudent(request.Context(), input.UserID, input.FullName, input.BirthDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, profile)
}

func (handler *Handler) updateStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateStudentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	profile, err := handler.service.UpdateStudentName(request.Context(), studentID, input.FullName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) deleteStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteStudent(request.Context(), studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
