package domain

import (
	"errors"
	"strings"
	"time"
)

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

// WorkoutLog is one logged exercise. Integer fields are stored as JSON
// strings, matching records written by the browser client.
type WorkoutLog struct {
	UserID       string  `json:"userId"`
	ExerciseName string  `json:"exerciseName"`
	MuscleGroup  string  `json:"muscleGroup"`
	Sets         int64   `json:"sets,string"`
	Reps         int64   `json:"reps,string"`
	WeightKg     float64 `json:"weightKg"`
	Notes        string  `json:"notes"`
	LoggedAt     int64   `json:"loggedAt,string"` // epoch ms
}

// LoggedTime returns LoggedAt as a time.
func (w WorkoutLog) LoggedTime() time.Time { return time.UnixMilli(w.LoggedAt) }

// WorkoutInput is what a caller supplies when logging a workout. The owner
// and timestamp are stamped by the service.
type WorkoutInput struct {
	ExerciseName string
	MuscleGroup  string
	Sets         int64
	Reps         int64
	WeightKg     float64
	Notes        string
}

func (w WorkoutInput) Validate() error {
	if strings.TrimSpace(w.ExerciseName) == "" {
		return errors.New("exercise name is required")
	}
	if w.Sets < 0 || w.Reps < 0 {
		return errors.New("sets and reps must not be negative")
	}
	if w.WeightKg < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
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

type NotificationPreferences struct {
	WorkoutReminders   bool   `json:"workoutReminders"`
	MealReminders      bool   `json:"mealReminders"`
	HydrationReminders bool   `json:"hydrationReminders"`
	ReminderTime       string `json:"reminderTime"`
}
