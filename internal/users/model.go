package users

import "time"

// Subscription statuses carried on a user profile.
const (
	StatusActive   = "active"
	StatusTrialing = "trialing"
	StatusCanceled = "canceled"
	StatusNone     = "none"
)

// User represents an account and the profile fields that gate public links.
type User struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"fullName"`
	GivenName          string     `json:"givenName"`
	FamilyName         string     `json:"familyName"`
	PictureURL         string     `json:"pictureUrl"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
	TrialEndDate       *time.Time `json:"trialEndDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Premium reports whether the user's subscription exempts their links from
// free-tier expiry.
func (u User) Premium() bool {
	return u.SubscriptionStatus == StatusActive || u.SubscriptionStatus == StatusTrialing
}
