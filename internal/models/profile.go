package models

// Profile holds the identity fields captured for a collector session
type Profile struct {
	// Name is the player name as entered in the game
	Name string

	// PhoneNumber is the phone number as entered in the game
	PhoneNumber string

	// Gender is the selected player gender
	Gender string

	// Level is the selected school level
	Level string
}
