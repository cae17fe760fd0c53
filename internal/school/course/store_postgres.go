package course

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu-dev/eduka/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const courseColumns = `id, title, description, startdate, teacherprofileid, createdat, updatedat`

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Course, int, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM school.course
		ORDER BY startdate DESC, id DESC
		LIMIT $1 OFFSET $2`
	const countQuery = `SELECT count(*) FROM school.course`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (repository *PostgresRepository) ListByTeacher(context context.Context, teacherProfileID int64, limit, offset int) ([]*Course, int, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM school.course
		WHERE teacherprofileid = $1
		ORDER BY startdate DESC, id DESC
		LIMIT $2 OFFSET $3`
	const countQuery = `SELECT count(*) FROM school.course WHERE teacherprofileid = $1`

	var total int
	if err := repository.db.QueryRow(context, countQuery, teacherProfileID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_teacher_courses")
	}

	rows, err := repository.db.Query(context, query, teacherProfileID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_teacher_courses")
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Course, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM school.course
		WHERE id = $1`

	course := &Course{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&course.ID, &course.Title, &course.Description, &course.StartDate,
		&course.TeacherProfileID, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_course")
	}

	return course, nil
}

func (repository *PostgresRepository) FindWithDetails(context context.Context, id int64) (*Course, error) {
	course, err := repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT e.id, e.studentprofileid, p.fullname, e.enrolldate, e.grade
		FROM school.enrollment e
		JOIN school.studentprofile p ON p.id = e.studentprofileid
		WHERE e.courseid = $1
		ORDER BY e.enrolldate DESC, e.id DESC`

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_course_enrollments")
	}
	defer rows.Close()

	for rows.Next() {
		var summary EnrollmentSummary
		if err := rows.Scan(&summary.EnrollmentID, &summary.StudentID, &summary.StudentName,
			&summary.EnrollDate, &summary.Grade); err != nil {
			return nil, dberr.Wrap(err, "scan_course_enrollment")
		}
		course.Enrollments = append(course.Enrollments, summary)
	}

	return course, nil
}

func (repository *PostgresRepository) Create(context context.Context, course *Course) error {
	const query = `
		INSERT INTO school.course (title, description, startdate, teacherprofileid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, createdat`

	err := repository.db.QueryRow(context, query,
		course.Title, course.Description, course.StartDate, course.TeacherProfileID,
	).Scan(&course.ID, &course.CreatedAt)

	return dberr.Wrap(err, "create_course")
}

func (repository *PostgresRepository) Update(context context.Context, course *Course) error {
	const query = `
		UPDATE school.course
		SET title = $2, description = $3, startdate = $4, teacherprofileid = $5, updatedat = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		course.ID, course.Title, course.Description, course.StartDate, course.TeacherProfileID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_course")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	const query = `DELETE FROM school.course WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM school.course WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "course_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CountEnrollments(context context.Context, id int64) (int, error) {
	const query = `SELECT count(*) FROM school.enrollment WHERE courseid = $1`

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_course_enrollments")
	}
	return total, nil
}

// scanCourses drains a course row set with the standard column order.
func scanCourses(rows pgx.Rows) ([]*Course, error) {
	var courses []*Course
	for rows.Next() {
		course := &Course{}
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.StartDate,
			&course.TeacherProfileID, &course.CreatedAt, &course.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_course")
		}
		courses = append(courses, course)
	}
	return courses, nil
}
