package planner

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrCourseExists    = errors.New("course already exists")
	ErrEmptyCourseName = errors.New("course name is empty")
)
