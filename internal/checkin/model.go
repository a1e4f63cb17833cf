package checkin

import "time"

// Attendee mirrors one data row of the grid.
type Attendee struct {
	ID          string
	Phone       string
	Name        string
	CourseName  string
	CourseDate  string
	CourseType  string
	Status      string
	CheckInTime string
}

// cell reads a grid cell, tolerating rows shorter than NumCols. Sheet reads
// drop trailing empty cells, so a not-yet-checked-in row often has no
// status/check_in_time cells at all.
func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func fromRow(row []string) Attendee {
	return Attendee{
		ID:          cell(row, ColID),
		Phone:       cell(row, ColPhone),
		Name:        cell(row, ColName),
		CourseName:  cell(row, ColCourseName),
		CourseDate:  formatCourseDate(cell(row, ColCourseDate)),
		CourseType:  cell(row, ColCourseType),
		Status:      cell(row, ColStatus),
		CheckInTime: cell(row, ColCheckInTime),
	}
}

func (a Attendee) toView() AttendeeView {
	return AttendeeView{
		ID:         a.ID,
		Phone:      a.Phone,
		Name:       a.Name,
		CourseName: a.CourseName,
		CourseDate: a.CourseDate,
		CourseType: a.CourseType,
		Status:     a.Status,
	}
}

func (a Attendee) toStaffDTO() StaffAttendee {
	return StaffAttendee{
		ID:          a.ID,
		Phone:       a.Phone,
		Name:        a.Name,
		CourseName:  a.CourseName,
		CourseDate:  a.CourseDate,
		CourseType:  a.CourseType,
		Status:      a.Status,
		CheckInTime: a.CheckInTime,
	}
}

// courseDateLayouts covers the formats stores hand back: ISO dates, slashed
// dates and the spreadsheet default m-d-yy.
var courseDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"1-2-06",
	time.RFC3339,
}

// formatCourseDate normalizes a date-like value to YYYY/MM/DD. Values that
// parse as none of the known layouts pass through unchanged.
func formatCourseDate(v string) string {
	if v == "" {
		return v
	}
	for _, layout := range courseDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(DateLayout)
		}
	}
	return v
}
