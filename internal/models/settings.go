package models

// Settings represents application-wide settings
type Settings struct {
	OwnerID              string `json:"owner_id"`               // owner attached to every habit created locally
	Timezone             string `json:"timezone"`               // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	NotificationsEnabled bool   `json:"notifications_enabled"`  // whether the reminder poller sends notifications
	ReminderIntervalMin  int    `json:"reminder_interval_min"`  // how often the reminder poller re-evaluates due habits
}
