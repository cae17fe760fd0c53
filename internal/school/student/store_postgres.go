package student

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu-dev/eduka/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `id, userid, fullname, birthdate, createdat, updatedat`

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Profile, int, error) {
	const query = `
		SELECT ` + profileColumns + `
		FROM school.studentprofile
		ORDER BY fullname ASC, id ASC
		LIMIT $1 OFFSET $2`
	const countQuery = `SELECT count(*) FROM school.studentprofile`

	return repository.list(context, query, countQuery, limit, offset)
}

func (repository *PostgresRepository) ListActive(context context.Context, limit, offset int) ([]*Profile, int, error) {
	const query = `
		SELECT p.id, p.userid, p.fullname, p.birthdate, p.createdat, p.updatedat
		FROM school.studentprofile p
		JOIN users.account a ON a.id = p.userid
		WHERE a.isactive
		ORDER BY p.fullname ASC, p.id ASC
		LIMIT $1 OFFSET $2`
	const countQuery = `
		SELECT count(*)
		FROM school.studentprofile p
		JOIN users.account a ON a.id = p.userid
		WHERE a.isactive`

	return repository.list(context, query, countQuery, limit, offset)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Profile, error) {
	const query = `
		SELECT ` + profileColumns + `
		FROM school.studentprofile
		WHERE id = $1`

	profile := &Profile{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.BirthDate,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_student")
	}

	return profile, nil
}

func (repository *PostgresRepository) FindWithEnrollments(context context.Context, id int64) (*Profile, error) {
	profile, err := repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT e.id, e.courseid, c.title, e.enrolldate, e.grade
		FROM school.enrollment e
		JOIN school.course c ON c.id = e.courseid
		WHERE e.studentprofileid = $1
		ORDER BY e.enrolldate DESC, e.id DESC`

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_student_enrollments")
	}
	defer rows.Close()

	for rows.Next() {
		var summary EnrollmentSummary
		if err := rows.Scan(&summary.EnrollmentID, &summary.CourseID, &summary.CourseTitle,
			&summary.EnrollDate, &summary.Grade); err != nil {
			return nil, dberr.Wrap(err, "scan_student_enrollment")
		}
		profile.Enrollments = append(profile.Enrollments, summary)
	}

	return profile, nil
}

func (repository *PostgresRepository) Create(context context.Context, profile *Profile) error {
	const query = `
		INSERT INTO school.studentprofile (userid, fullname, birthdate)
		VALUES ($1, $2, $3)
		RETURNING id, createdat`

	err := repository.db.QueryRow(context, query,
		profile.UserID, profile.FullName, profile.BirthDate,
	).Scan(&profile.ID, &profile.CreatedAt)

	return dberr.Wrap(err, "create_student")
}

func (repository *PostgresRepository) UpdateFullName(context context.Context, id int64, fullName string) error {
	const query = `
		UPDATE school.studentprofile
		SET fullname = $2, updatedat = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, fullName)
	if err != nil {
		return dberr.Wrap(err, "update_student")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	const query = `DELETE FROM school.studentprofile WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_student")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM school.studentprofile WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "student_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) list(context context.Context, query, countQuery string, limit, offset int) ([]*Profile, int, error) {
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_students")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_students")
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		profile := &Profile{}
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.FullName,
			&profile.BirthDate, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_student")
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}
