package models

import "time"

// Language represents the language the learner studies in
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageHaryanvi Language = "Haryanvi"
	LanguagePunjabi  Language = "Punjabi"
	LanguageKumauni  Language = "Kumauni"
	LanguageGarhwali Language = "Garhwali"
)

// Languages lists the languages offered on the signup form, in display order
var Languages = []Language{
	LanguageEnglish,
	LanguageHindi,
	LanguageHaryanvi,
	LanguagePunjabi,
	LanguageKumauni,
	LanguageGarhwali,
}

// Level represents the learner's self-declared proficiency
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels lists the levels offered on the signup form, in display order
var Levels = []Level{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
}

// ProfileKey is the storage key the learner profile lives under
const ProfileKey = "padho_user"

// UserProfile represents the persisted learner record
type UserProfile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Language         Language   `json:"language"`
	Level            Level      `json:"level"`
	XP               int        `json:"xp"`
	Streak           int        `json:"streak"`
	CompletedLessons []string   `json:"completedLessons"`
	Age              *int       `json:"age,omitempty"`
	Badges           []string   `json:"badges,omitzero"`     // written at signup only
	CreatedAt        *time.Time `json:"createdAt,omitempty"` // written at signup only
}

// LoginRequest represents the login form submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents the signup form submission.
// Age is kept as text because the form submits it as free input.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      string `json:"age"`
	Language string `json:"language"`
	Level    string `json:"level"`
}
