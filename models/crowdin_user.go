package models

import "fmt"

// CrowdinUser is the authenticated viewer as returned by the Crowdin GraphQL API
type CrowdinUser struct {
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// HandoverPayload is the body sent to the downstream notifier
type HandoverPayload struct {
	User             CrowdinUser `json:"crowdin_user"`
	TranslationCount int         `json:"crowdin_translation_count"`
}

// SyncResult is the outcome of a completed code exchange and profile fetch
type SyncResult struct {
	User             CrowdinUser
	TranslationCount int
}

// Payload converts the result into the notifier body
func (r *SyncResult) Payload() HandoverPayload {
	return HandoverPayload{
		User:             r.User,
		TranslationCount: r.TranslationCount,
	}
}

// Greeting renders the plaintext summary shown after a plain login.
// appName is the Discord application the user is told to run /crowdin-sync with.
func (r *SyncResult) Greeting(appName string) string {
	return fmt.Sprintf(
		"Hi there %s! You have %d translations. Please make sure you execute '/crowdin-sync' on the server with the %s application",
		r.User.Username, r.TranslationCount, appName,
	)
}
