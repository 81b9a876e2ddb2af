package models

// UserAccount represents a person who can own tests.
type UserAccount struct {
	ID                int    `json:"id"`
	AccountUsername   string `json:"account_username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Department        string `json:"department"`
	TrainingCompleted bool   `json:"training_completed"`
	IsAnalyst         bool   `json:"is_analyst"`
	IsAdministrator   bool   `json:"is_administrator"`
}
