package models

import "github.com/shopspring/decimal"

type SubscriptionTier string

const (
	SubscriptionFree    SubscriptionTier = "free"
	SubscriptionPremium SubscriptionTier = "premium"
)

type UserProfile struct {
	Address           string           `json:"address"`
	Bns               string           `json:"bns"`
	Balance           decimal.Decimal  `json:"balance"`
	Subscription      SubscriptionTier `json:"subscription"`
	ProfilePictureURL string           `json:"profilePictureUrl"`
	School            string           `json:"school,omitempty"`
	Major             string           `json:"major,omitempty"`
	Year              int              `json:"year,omitempty"`
}

// ProfileDetails are the user-editable fields of a profile.
type ProfileDetails struct {
	Bns               string `json:"bns"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	School            string `json:"school"`
	Major             string `json:"major"`
	Year              int    `json:"year"`
}

func (p *UserProfile) ApplyDetails(d ProfileDetails) {
	p.Bns = d.Bns
	p.ProfilePictureURL = d.ProfilePictureURL
	p.School = d.School
	p.Major = d.Major
	p.Year = d.Year
}
