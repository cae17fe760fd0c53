package enrollment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/dberr"
	"github.com/minhvu-dev/eduka/internal/school/shared"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const enrollmentColumns = `id, studentprofileid, courseid, enrolldate, grade, createdat, updatedat`

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Enrollment, int, error) {
	const countQuery = `SELECT count(*) FROM school.enrollment`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_enrollments")
	}

	const query = `
		SELECT ` + enrollmentColumns + `
		FROM school.enrollment
		ORDER BY enrolldate DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_enrollments")
	}
	defer rows.Close()

	enrollments, err := scanEnrollments(rows)
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentProfileID int64) ([]*Enrollment, error) {
	const query = `
		SELECT ` + enrollmentColumns + `
		FROM school.enrollment
		WHERE studentprofileid = $1
		ORDER BY enrolldate DESC, id DESC`

	rows, err := repository.db.Query(context, query, studentProfileID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_enrollments_by_student")
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID int64) ([]*Enrollment, error) {
	const query = `
		SELECT ` + enrollmentColumns + `
		FROM school.enrollment
		WHERE courseid = $1
		ORDER BY enrolldate DESC, id DESC`

	rows, err := repository.db.Query(context, query, courseID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_enrollments_by_course")
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Enrollment, error) {
	const query = `
		SELECT ` + enrollmentColumns + `
		FROM school.enrollment
		WHERE id = $1`

	enrollment, err := scanEnrollment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_enrollment")
	}
	return enrollment, nil
}

func (repository *PostgresRepository) FindWithDetails(context context.Context, id int64) (*Details, error) {
	const query = `
		SELECT e.id, e.studentprofileid, e.courseid, e.enrolldate, e.grade,
		       e.createdat, e.updatedat, s.fullname, c.title
		FROM school.enrollment e
		JOIN school.studentprofile s ON s.id = e.studentprofileid
		JOIN school.course c ON c.id = e.courseid
		WHERE e.id = $1`

	details := &Details{}
	var gradeValue *float64
	err := repository.db.QueryRow(context, query, id).Scan(
		&details.ID, &details.StudentProfileID, &details.CourseID, &details.EnrollDate,
		&gradeValue, &details.CreatedAt, &details.UpdatedAt,
		&details.StudentName, &details.CourseTitle,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_enrollment_details")
	}

	details.Grade, err = storedGrade(gradeValue)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (repository *PostgresRepository) Create(context context.Context, enrollment *Enrollment) error {
	const query = `
		INSERT INTO school.enrollment (studentprofileid, courseid, enrolldate)
		VALUES ($1, $2, $3)
		RETURNING id, createdat`

	err := repository.db.QueryRow(context, query,
		enrollment.StudentProfileID, enrollment.CourseID, enrollment.EnrollDate,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)

	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Student is already enrolled in this course")
	}
	return dberr.Wrap(err, "create_enrollment")
}

func (repository *PostgresRepository) UpdateGrade(context context.Context, id int64, grade *float64) error {
	const query = `
		UPDATE school.enrollment
		SET grade = $2, updatedat = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, grade)
	if err != nil {
		return dberr.Wrap(err, "update_enrollment_grade")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	const query = `DELETE FROM school.enrollment WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_enrollment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM school.enrollment WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "enrollment_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) IsEnrolled(context context.Context, studentProfileID, courseID int64) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM school.enrollment
			WHERE studentprofileid = $1 AND courseid = $2
		)`

	var enrolled bool
	if err := repository.db.QueryRow(context, query, studentProfileID, courseID).Scan(&enrolled); err != nil {
		return false, dberr.Wrap(err, "enrollment_pair_exists")
	}
	return enrolled, nil
}

func scanEnrollment(row pgx.Row) (*Enrollment, error) {
	enrollment := &Enrollment{}
	var gradeValue *float64

	err := row.Scan(
		&enrollment.ID, &enrollment.StudentProfileID, &enrollment.CourseID,
		&enrollment.EnrollDate, &gradeValue, &enrollment.CreatedAt, &enrollment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	enrollment.Grade, err = storedGrade(gradeValue)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func scanEnrollments(rows pgx.Rows) ([]*Enrollment, error) {
	var enrollments []*Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_enrollment")
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

// storedGrade converts a nullable column value back into the value object.
// The CHECK constraint keeps stored grades in range, so a failure here means
// the row was corrupted outside the application.
func storedGrade(value *float64) (*shared.Grade, error) {
	if value == nil {
		return nil, nil
	}

	grade, err := shared.NewGrade(*value)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}
