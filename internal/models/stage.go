package models

// Stage is the view the application is currently in.
type Stage string

const (
	StageConnectWallet     Stage = "connect_wallet"
	StageCreateProfileName Stage = "create_profile_name"
	StageOnboarding        Stage = "onboarding"
	StageDashboard         Stage = "dashboard"
	StageSetup             Stage = "setup"
	StageStudying          Stage = "studying"
	StageSummary           Stage = "summary"
)
