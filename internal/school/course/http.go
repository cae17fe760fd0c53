package course

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
	router.Get("/", handler.listCourses)
	router.Get("/{id}", handler.getCourse)
	router.Get("/{id}/details", handler.getCourseWithDetails)
	router.Get("/by-teacher/{teacherId}", handler.listCoursesByTeacher)

	// Staff only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireRole(sec.RoleTeacher))

		staffRoute.Post("/", handler.createCourse)
		staffRoute.Patch("/{id}", handler.updateCourse)
		staffRoute.Delete("/{id}", handler.deleteCourse)
	})
}

type createCourseRequest struct {
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	StartDate        time.Time `json:"start_date"`
	TeacherProfileID int64     `json:"teacher_profile_id"`
}

type updateCourseRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	ClearDescription bool       `json:"clear_description,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	TeacherProfileID *int64     `json:"teacher_profile_id,omitempty"`
}

func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	courses, total, err := handler.service.ListCourses(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, courses, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listCoursesByTeacher(writer http.ResponseWriter, request *http.Request) {
	teacherID, err := requestutil.ID(request, "teacherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	courses, total, err := handler.service.ListCoursesByTeacher(request.Context(), teacherID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, courses, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.GetCourse(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) getCourseWithDetails(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.GetCourseWithDetails(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	var input createCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course, err := handler.service.CreateCourse(request.Context(), CreateInput{
		Title:            input.Title,
		Description:      input.Description,
		StartDate:        input.StartDate,
		TeacherProfileID: input.TeacherProfileID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, course)
}

func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course, err := handler.service.UpdateCourse(request.Context(), courseID, UpdateInput{
		Title:            input.Title,
		Description:      input.Description,
		ClearDescription: input.ClearDescription,
		StartDate:        input.StartDate,
		TeacherProfileID: input.TeacherProfileID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCourse(request.Context(), courseID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
