package config

// Layout constants.
const (
	// MinPaneWidth is the minimum width for a dashboard pane.
	MinPaneWidth = 24

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// TargetBarWidth is the preferred width of the countdown bar.
	TargetBarWidth = 30

	// MinBarWidth is the minimum width of the countdown bar.
	MinBarWidth = 10
)

// Display limits.
const (
	// MaxVisibleEvents limits events shown in the schedule pane.
	MaxVisibleEvents = 12

	// MaxVisibleCourses limits courses shown in the study-stats pane.
	MaxVisibleCourses = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum event title length.
	MaxTitleLength = 100

	// MaxNotesLength is the maximum notes length.
	MaxNotesLength = 500

	// MaxCourseNameLength is the maximum course name length.
	MaxCourseNameLength = 40
)
