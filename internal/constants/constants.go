package constants

import "time"

// Frequency is the recurrence mode of a habit
type Frequency string

const (
	AppName            = "beunstoppable"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/beunstoppable/beunstoppable.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultOwnerID identifies the local single-user profile when no owner is configured
	DefaultOwnerID = "local"

	// Frequency constants
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"

	// Category conventions. Not a closed set: habits may carry any
	// category string, these are just the ones the UI offers.
	CategoryGeneral  = "General"
	CategoryHealth   = "Health"
	CategoryLearning = "Learning"
	CategoryWork     = "Work"

	// Reminder constants
	DefaultReminderIntervalMin = 30
	NotifyMaxRetries           = 3
	NotifyRetryDelay           = 100 * time.Millisecond
	NotifierLockfileName       = "beunstoppable-notifier.lock"
	NotificationDurationMs     = 5000
	TrayAppIdentifier          = "com.akshaypatel.beunstoppable"
)
