package teacher

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
	router.Get("/", handler.listTeachers)
	router.Get("/active", handler.listActiveTeachers)
	router.Get("/{id}", handler.getTeacher)
	router.Get("/{id}/courses", handler.getTeacherWithCourses)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createTeacher)
		adminRoute.Patch("/{id}", handler.updateTeacher)
		adminRoute.Delete("/{id}", handler.deleteTeacher)
	})
}

type createTeacherRequest struct {
	UserID   int64     `json:"user_id"`
	FullName string    `json:"full_name"`
	HireDate time.Time `json:"hire_date"`
}

type updateTeacherRequest struct {
	FullName string `json:"full_name"`
}

func (handler *Handler) listTeachers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	profiles, total, err := handler.service.ListTeachers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, profiles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listActiveTeachers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	profiles, total, err := handler.service.ListActiveTeachers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, profiles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getTeacher(writer http.ResponseWriter, request *http.Request) {
	teacherID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetTeacher(request.Context(), teacherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) getTeacherWithCourses(writer http.ResponseWriter, request *http.Request) {
	teacherID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetTeacherWithCourses(request.Context(), teacherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) createTeacher(writer http.ResponseWriter, request *http.Request) {
	var input createTeacherRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	profile, err := handler.service.CreateTeacher(request.Context(), input.UserID, input.FullName, input.HireDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, profile)
}

func (handler *Handler) updateTeacher(writer http.ResponseWriter, request *http.Request) {
	teacherID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateTeacherRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	profile, err := handler.service.UpdateTeacherName(request.Context(), teacherID, input.FullName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) deleteTeacher(writer http.ResponseWriter, request *http.Request) {
	teacherID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTeacher(request.Context(), teacherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
