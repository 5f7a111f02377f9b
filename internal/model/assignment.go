package model

// Assignment is an upcoming assignment extracted from a syllabus.
type Assignment struct {
	Name    string
	DueDate string // date-like, as returned by the parsing service
	Details string
}

// PriorityAssignment is an important date extracted from a syllabus.
type PriorityAssignment struct {
	Event string
	Date  string
}
