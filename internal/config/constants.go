package config

// Timer defaults (minutes).
const (
	DefaultFocusMin  = 25
	DefaultBreakMin  = 5
	DefaultCustomMin = 45
)

// Wellness scale bounds. Zero is reserved for "not recorded".
const (
	ScaleMin = 1
	ScaleMax = 10
)

// Persistent store record keys.
const (
	KeyEvents   = "events"
	KeyCourses  = "courses"
	KeyWellness = "wellness"
	KeyStudyLog = "studyLog"
	KeySettings = "settings"
)

// Application settings.
const (
	AppName               = "gameplan"
	DBFileName            = "gameplan.db"
	DateLayout            = "2006-01-02"
	ClockLayout           = "15:04"
	SentinelCourse        = "General"
	MaxPassphraseAttempts = 3
)

// Default theme name.
const DefaultTheme = "default"
