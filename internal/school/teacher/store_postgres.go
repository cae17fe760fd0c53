package teacher

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

const profileColumns = `id, userid, fullname, hiredate, createdat, updatedat`

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Profile, int, error) {
	const query = `
		SELECT ` + profileColumns + `
		FROM school.teacherprofile
		ORDER BY fullname ASC, id ASC
		LIMIT $1 OFFSET $2`
	const countQuery = `SELECT count(*) FROM school.teacherprofile`

	return repository.list(context, query, countQuery, limit, offset)
}

func (repository *PostgresRepository) ListActive(context context.Context, limit, offset int) ([]*Profile, int, error) {
	const query = `
		SELECT p.id, p.userid, p.fullname, p.hiredate, p.createdat, p.updatedat
		FROM school.teacherprofile p
		JOIN users.account a ON a.id = p.userid
		WHERE a.isactive
		ORDER BY p.fullname ASC, p.id ASC
		LIMIT $1 OFFSET $2`
	const countQuery = `
		SELECT count(*)
		FROM school.teacherprofile p
		JOIN users.account a ON a.id = p.userid
		WHERE a.isactive`

	return repository.list(context, query, countQuery, limit, offset)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Profile, error) {
	const query = `
		SELECT ` + profileColumns + `
		FROM school.teacherprofile
		WHERE id = $1`

	profile := &Profile{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.HireDate,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_teacher")
	}

	return profile, nil
}

func (repository *PostgresRepository) FindWithCourses(context context.Context, id int64) (*Profile, error) {
	profile, err := repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, title, startdate
		FROM school.course
		WHERE teacherprofileid = $1
		ORDER BY startdate DESC, id DESC`

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_teacher_courses")
	}
	defer rows.Close()

	for rows.Next() {
		var summary CourseSummary
		if err := rows.Scan(&summary.CourseID, &summary.Title, &summary.StartDate); err != nil {
			return nil, dberr.Wrap(err, "scan_teacher_course")
		}
		profile.Courses = append(profile.Courses, summary)
	}

	return profile, nil
}

func (repository *PostgresRepository) Create(context context.Context, profile *Profile) error {
	const query = `
		INSERT INTO school.teacherprofile (userid, fullname, hiredate)
		VALUES ($1, $2, $3)
		RETURNING id, createdat`

	err := repository.db.QueryRow(context, query,
		profile.UserID, profile.FullName, profile.HireDate,
	).Scan(&profile.ID, &profile.CreatedAt)

	return dberr.Wrap(err, "create_teacher")
}

func (repository *PostgresRepository) UpdateFullName(context context.Context, id int64, fullName string) error {
	const query = `
		UPDATE school.teacherprofile
		SET fullname = $2, updatedat = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, fullName)
	if err != nil {
		return dberr.Wrap(err, "update_teacher")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	const query = `DELETE FROM school.teacherprofile WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_teacher")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM school.teacherprofile WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "teacher_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) list(context context.Context, query, countQuery string, limit, offset int) ([]*Profile, int, error) {
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_teachers")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_teachers")
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		profile := &Profile{}
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.FullName,
			&profile.HireDate, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_teacher")
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}
