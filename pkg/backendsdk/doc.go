/*
Package backendsdk is the Go client for the task queue and fitness backend.

# Overview

Every account, session and record lives inside an origin. An origin stands in
for one browser profile: it has its own user table, its own signed in session
and its own collections. Mint an origin once and keep its token:

	client := backendsdk.NewSDKClient("http://localhost:8080")

	origin, err := client.MintOrigin(ctx, "my-laptop")
	// persist origin.Token() somewhere

	// later
	origin = client.ResumeOrigin(token)

# Accounts

	err = origin.Register(ctx, backendsdk.RegisterRequest{
		FirstName: "Alice",
		Email:     "alice@example.com",
		Password:  "correct horse",
	})

	code, err := origin.RequestVerificationCode(ctx) // code is only echoed in dev
	err = origin.ConfirmVerification(ctx, code)

	err = origin.Login(ctx, "alice@example.com", "correct horse")
	profile, err := origin.GetProfile(ctx)

# Data

Once signed in (and verified, when the server requires it) the collection
methods operate on the signed in account:

	log, err := origin.LogWorkout(ctx, backendsdk.WorkoutRequest{ExerciseName: "Squat", Sets: 3, Reps: 5})
	tasks, err := origin.ListTasks(ctx)
	board, err := origin.Leaderboard(ctx, "all_time", 10)

# Errors

Non-2xx responses are returned as *APIError. Compare Code against the
ErrorCode constants, or use IsCode:

	if backendsdk.IsCode(err, backendsdk.ErrorCodeNoSession) {
		// sign in again
	}
*/
package backendsdk
