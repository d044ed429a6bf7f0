package links

import "time"

// Reason explains an access decision. Only the Servable boolean gates
// rendering; the reason is diagnostic.
type Reason string

const (
	ReasonActive      Reason = "active"
	ReasonDeactivated Reason = "owner-manual-deactivation"
	ReasonAgeExpired  Reason = "age-expired"
	ReasonTrialEnded  Reason = "trial-ended-legacy"
)

// Decision is the outcome of evaluating a link against its owner's plan.
type Decision struct {
	Servable bool   `json:"servable"`
	Reason   Reason `json:"reason"`
}

// FreeLinkWindow is how long a free owner's link stays servable, measured
// from creation. A link is servable strictly before createdAt+window and
// expired from that instant onward.
const FreeLinkWindow = 7 * 24 * time.Hour

const (
	statusActive   = "active"
	statusTrialing = "trialing"
)

// Evaluate decides whether a public link is servable. Pure function, no
// side effects.
//
// An inactive link is never servable. A premium owner's active link is always
// servable regardless of age. A free owner's active link is servable only
// while younger than FreeLinkWindow and not gated by a lapsed legacy trial.
// Legacy trial expiry (TrialEndDate in the past) exists for accounts that
// predate subscription statuses and is checked independently of the age gate.
func Evaluate(link PublicLink, owner OwnerProfile, now time.Time) Decision {
	if !link.IsActive {
		return Decision{Servable: false, Reason: ReasonDeactivated}
	}

	premium := owner.SubscriptionStatus == statusActive || owner.SubscriptionStatus == statusTrialing
	aged := now.Sub(link.CreatedAt) >= FreeLinkWindow
	trialEnded := owner.TrialEndDate != nil && owner.TrialEndDate.Before(now)

	if premium || (!aged && !trialEnded) {
		return Decision{Servable: true, Reason: ReasonActive}
	}
	if aged {
		return Decision{Servable: false, Reason: ReasonAgeExpired}
	}
	return Decision{Servable: false, Reason: ReasonTrialEnded}
}
