package mysqlstore

import (
	"context"

	"arc-checkin/internal/checkin"
	"arc-checkin/internal/platform/db"
)

// Store keeps the attendee table in MySQL. seq preserves the original
// import order so the grid the service sees is stable between reads.
type Store struct{ db db.DBTX }

func New(conn db.DBTX) *Store { return &Store{db: conn} }

type attendeeRow struct {
	ID          string
	Phone       string
	Name        string
	CourseName  string
	CourseDate  string
	CourseType  string
	Status      string
	CheckInTime string
}

// Rows reconstructs the grid: header first, then data rows ordered by seq.
func (s *Store) Rows(ctx context.Context) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, phone, name, course_name,
	       COALESCE(DATE_FORMAT(course_date, '%Y/%m/%d'), '') AS course_date,
	       course_type, status, check_in_time
	FROM attendees
	ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := [][]string{append([]string(nil), checkin.Header...)}
	for rows.Next() {
		var r attendeeRow
		if err := rows.Scan(&r.ID, &r.Phone, &r.Name, &r.CourseName, &r.CourseDate, &r.CourseType, &r.Status, &r.CheckInTime); err != nil {
			return nil, err
		}
		out = append(out, []string{r.ID, r.Phone, r.Name, r.CourseName, r.CourseDate, r.CourseType, r.Status, r.CheckInTime})
	}
	return out, rows.Err()
}

// CheckInRow marks the attendee checked in with one conditional UPDATE.
// ok=false means the row was already checked in when the write landed.
func (s *Store) CheckInRow(ctx context.Context, id, status, checkInTime string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE attendees
	SET status = ?, check_in_time = ?
	WHERE id = ? AND status <> ?`,
		status, checkInTime, id, status)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

// AppendRow adds one attendee. Used by the import tooling.
func (s *Store) AppendRow(ctx context.Context, row []string) error {
	if len(row) < checkin.NumCols {
		padded := make([]string, checkin.NumCols)
		copy(padded, row)
		row = padded
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO attendees (id, phone, name, course_name, course_date, course_type, status, check_in_time)
	VALUES (?, ?, ?, ?, STR_TO_DATE(NULLIF(?, ''), '%Y/%m/%d'), ?, ?, ?)`,
		row[checkin.ColID], row[checkin.ColPhone], row[checkin.ColName], row[checkin.ColCourseName],
		row[checkin.ColCourseDate], row[checkin.ColCourseType], row[checkin.ColStatus], row[checkin.ColCheckInTime])
	return err
}

// Provision creates the attendees table if absent.
func (s *Store) Provision(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS attendees (
		seq           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		id            VARCHAR(64)  NOT NULL,
		phone         VARCHAR(32)  NOT NULL,
		name          VARCHAR(255) NOT NULL,
		course_name   VARCHAR(255) NOT NULL DEFAULT '',
		course_date   DATE NULL,
		course_type   VARCHAR(64)  NOT NULL DEFAULT '',
		status        VARCHAR(32)  NOT NULL DEFAULT '',
		check_in_time VARCHAR(40)  NOT NULL DEFAULT '',
		PRIMARY KEY (seq),
		UNIQUE KEY uq_attendees_id (id),
		KEY idx_attendees_phone (phone)
	) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`)
	return err
}

var _ interface {
	checkin.TableStore
	checkin.ConditionalCheckIner
	checkin.Provisioner
} = (*Store)(nil)
