package store

// Storage keys, relative to a Store's prefix. With the default "ironclad_"
// prefix they match the browser localStorage layout.
const (
	KeyUsers      = "users"
	KeySession    = "session"
	KeyOnboarding = "onboarding"
	KeyWorkouts   = "workouts"
	KeyProgress   = "progress"
	KeyNotif      = "notif"
	KeyTasks      = "tasks"
	KeyCategories = "categories"
)
