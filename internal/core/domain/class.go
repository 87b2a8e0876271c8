package domain

import "time"

// Weekday names accepted in a schedule slot.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// ScheduleSlot is one weekly meeting of a class. Times are "HH:MM" strings;
// ordering is validated lexically, which is correct for zero-padded 24h times.
type ScheduleSlot struct {
	Day       Weekday `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// Class is a scheduled offering of a Course taught by an Employee.
// BranchID is inherited from the Course at creation.
type Class struct {
	RecordMeta
	CourseID  string         `json:"courseId"`
	BranchID  string         `json:"branchId"`
	TeacherID string         `json:"teacherId"`
	Name      string         `json:"name"`
	Schedule  []ScheduleSlot `json:"schedule"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	IsActive  bool           `json:"isActive"`
}
