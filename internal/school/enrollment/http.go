package enrollment

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
	router.Get("/", handler.listEnrollments)
	router.Get("/{id}", handler.getEnrollment)
	router.Get("/{id}/details", handler.getEnrollmentWithDetails)
	router.Get("/by-student/{studentId}", handler.listByStudent)
	router.Get("/by-course/{courseId}", handler.listByCourse)

	// Staff only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireRole(sec.RoleTeacher))

		staffRoute.Post("/", handler.enrollStudent)
		staffRoute.Put("/{id}/grade", handler.assignGrade)
		staffRoute.Delete("/{id}/grade", handler.removeGrade)
		staffRoute.Delete("/{id}", handler.unenroll)
	})
}

type enrollRequest struct {
	StudentProfileID int64     `json:"student_profile_id"`
	CourseID         int64     `json:"course_id"`
	EnrollDate       time.Time `json:"enroll_date,omitempty"`
}

type assignGradeRequest struct {
	Grade float64 `json:"grade"`
}

func (handler *Handler) listEnrollments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	enrollments, total, err := handler.service.ListEnrollments(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, enrollments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listByStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.ID(request, "studentId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollments, err := handler.service.ListByStudent(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enrollments)
}

func (handler *Handler) listByCourse(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.ID(request, "courseId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollments, err := handler.service.ListByCourse(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enrollments)
}

func (handler *Handler) getEnrollment(writer http.ResponseWriter, request *http.Request) {
	enrollmentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollment, err := handler.service.GetEnrollment(request.Context(), enrollmentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enrollment)
}

func (handler *Handler) getEnrollmentWithDetails(writer http.ResponseWriter, request *http.Request) {
	enrollmentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	details, err := handler.service.GetEnrollmentWithDetails(request.Context(), enrollmentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, details)
}

func (handler *Handler) enrollStudent(writer http.ResponseWriter, request *http.Request) {
	var input enrollRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	enrollment, err := handler.service.EnrollStudent(request.Context(), input.StudentProfileID, input.CourseID, input.EnrollDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, enrollment)
}

func (handler *Handler) assignGrade(writer http.ResponseWriter, request *http.Request) {
	enrollmentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input assignGradeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	enrollment, err := handler.service.AssignGrade(request.Context(), enrollmentID, input.Grade)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enrollment)
}

func (handler *Handler) removeGrade(writer http.ResponseWriter, request *http.Request) {
	enrollmentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollment, err := handler.service.RemoveGrade(request.Context(), enrollmentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enrollment)
}

func (handler *Handler) unenroll(writer http.ResponseWriter, request *http.Request) {
	enrollmentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unenroll(request.Context(), enrollmentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
