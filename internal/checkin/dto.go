package checkin

const (
	ActionQuery   = "query"
	ActionCheckIn = "checkin"

	CacheKey        = "SHEET_DATA"
	StatusCheckedIn = "CheckedIn"

	// TestPhone is the rehearsal account. Check-ins against its row are
	// acknowledged but never persisted.
	TestPhone = "0987654321"

	DateLayout = "2006/01/02"
)

// Column indexes in the attendee grid. Row 0 is the header.
const (
	ColID = iota
	ColPhone
	ColName
	ColCourseName
	ColCourseDate
	ColCourseType
	ColStatus
	ColCheckInTime
	NumCols
)

// Header is the fixed first row of the attendee table.
var Header = []string{
	"id", "phone", "name", "course_name", "course_date", "course_type", "status", "check_in_time",
}

type Request struct {
	Action string `json:"action" binding:"required"`
	Phone  string `json:"phone,omitempty"`
	ID     string `json:"id,omitempty"`
}

// AttendeeView is the confirmation-screen projection. check_in_time is
// omitted on purpose; the confirmation screen does not need it.
type AttendeeView struct {
	ID         string `json:"id"`
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	CourseName string `json:"course_name"`
	CourseDate string `json:"course_date"`
	CourseType string `json:"course_type"`
	Status     string `json:"status"`
}

type Response struct {
	Success     bool          `json:"success"`
	Data        *AttendeeView `json:"data,omitempty"`
	Timestamp   string        `json:"timestamp,omitempty"`
	Code        string        `json:"code,omitempty"`
	Message     string        `json:"message,omitempty"`
	DebugStatus string        `json:"debugStatus,omitempty"`
}

// StaffAttendee is the staff-list projection. Unlike AttendeeView it carries
// the recorded check-in time.
type StaffAttendee struct {
	ID          string `json:"id"`
	Phone       string `json:"phone"`
	Name        string `json:"name"`
	CourseName  string `json:"course_name"`
	CourseDate  string `json:"course_date"`
	CourseType  string `json:"course_type"`
	Status      string `json:"status"`
	CheckInTime string `json:"check_in_time"`
}

type StaffListResponse struct {
	Total     int             `json:"total"`
	CheckedIn int             `json:"checked_in"`
	Attendees []StaffAttendee `json:"attendees"`
}
