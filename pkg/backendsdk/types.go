package backendsdk

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code (see the ErrorCode constants)
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency in /readyz.
type HealthChecks struct {
	Storage string `json:"storage"`
	Signer  string `json:"signer"`
}

// ============================================================================
// Origins
// ============================================================================

type MintOriginRequest struct {
	// Label is a free-form description of the client, e.g. a device name
	Label string `json:"label,omitempty"`
}

type OriginResponse struct {
	OriginID  string `json:"origin_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

// ============================================================================
// Accounts
// ============================================================================

type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the signed in account. Secrets are never included.
type Profile struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	DisplayName            string `json:"displayName"`
	Email                  string `json:"email"`
	IsVerified             bool   `json:"isVerified"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	CreatedAt              int64  `json:"createdAt"` // unix nanoseconds
}

type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type VerificationCodeRequest struct {
	Code string `json:"code"`
}

type VerificationCodeResponse struct {
	// Code is only populated when the server runs in dev mode. Otherwise the
	// code is delivered out of band.
	Code string `json:"code,omitempty"`
}

// ============================================================================
// Fitness
// ============================================================================

type OnboardingData struct {
	Age                      int64   `json:"age"`
	Weight                   float64 `json:"weight"`
	Height                   float64 `json:"height"`
	BiologicalSex            string  `json:"biologicalSex"`
	TrainingExperience       string  `json:"trainingExperience"`
	ActivityLevel            string  `json:"activityLevel"`
	PrimaryGoal              string  `json:"primaryGoal"`
	SecondaryGoal            string  `json:"secondaryGoal"`
	AvailableDaysPerWeek     int64   `json:"availableDaysPerWeek"`
	PreferredWorkoutDuration string  `json:"preferredWorkoutDuration"`
	DietType                 string  `json:"dietType"`
	FoodAllergies            string  `json:"foodAllergies"`
	MealsPerDay              int64   `json:"mealsPerDay"`
	SleepDuration            float64 `json:"sleepDuration"`
	StressLevel              string  `json:"stressLevel"`
}

type WorkoutRequest struct {
	ExerciseName string  `json:"exerciseName"`
	MuscleGroup  string  `json:"muscleGroup"`
	Sets         int64   `json:"sets"`
	Reps         int64   `json:"reps"`
	WeightKg     float64 `json:"weightKg"`
	Notes        string  `json:"notes"`
}

type WorkoutLog struct {
	ExerciseName string  `json:"exerciseName"`
	MuscleGroup  string  `json:"muscleGroup"`
	Sets         int64   `json:"sets"`
	Reps         int64   `json:"reps"`
	WeightKg     float64 `json:"weightKg"`
	Notes        string  `json:"notes"`
	LoggedAt     int64   `json:"loggedAt"` // unix milliseconds
}

type WorkoutsResponse struct {
	Workouts []WorkoutLog `json:"workouts"`
}

type ProgressEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
	ChestCm  float64 `json:"chestCm"`
	WaistCm  float64 `json:"waistCm"`
	HipsCm   float64 `json:"hipsCm"`
	ArmsCm   float64 `json:"armsCm"`
	Notes    string  `json:"notes"`
}

type ProgressResponse struct {
	Entries []ProgressEntry `json:"entries"`
}

type NotificationPreferences struct {
	WorkoutReminders   bool   `json:"workoutReminders"`
	MealReminders      bool   `json:"mealReminders"`
	HydrationReminders bool   `json:"hydrationReminders"`
	ReminderTime       string `json:"reminderTime"`
}

type LeaderboardEntry struct {
	DisplayName  string `json:"displayName"`
	WorkoutCount int64  `json:"workoutCount"`
	MemberSince  int64  `json:"memberSince"` // unix nanoseconds
}

type LeaderboardResponse struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ============================================================================
// Tasks
// ============================================================================

type Task struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"` // completed, pending, not-started
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"` // high, medium, low
	CreatedAt   string `json:"createdAt,omitempty"`
}

type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type Category struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Builtin bool   `json:"builtin"`
}

type AddCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
