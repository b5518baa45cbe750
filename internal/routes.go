package internal

import (
	"net/http"
	"studynexus/internal/controllers"
	"studynexus/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, commandController *controllers.CommandController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/wallet/connect", http.HandlerFunc(commandController.Connect))
	routers.Post("/wallet/disconnect", http.HandlerFunc(commandController.Disconnect))

	routers.Get("/profile", http.HandlerFunc(apiController.GetProfile))
	routers.Post("/profile", http.HandlerFunc(commandController.UpdateProfile))
	routers.Post("/profile/name", http.HandlerFunc(commandController.CreateProfileName))
	routers.Post("/onboarding/close", http.HandlerFunc(commandController.CloseOnboarding))
	routers.Post("/subscription/upgrade", http.HandlerFunc(commandController.UpgradeSubscription))

	routers.Get("/staking", http.HandlerFunc(apiController.GetStaking))
	routers.Post("/staking/stake", http.HandlerFunc(commandController.Stake))
	routers.Post("/staking/unstake", http.HandlerFunc(commandController.Unstake))
	routers.Post("/staking/claim", http.HandlerFunc(commandController.ClaimStakingRewards))

	routers.Get("/credentials", http.HandlerFunc(apiController.GetCredentials))
	routers.Post("/credentials/official", http.HandlerFunc(commandController.MintOfficialCredential))

	routers.Get("/sessions", http.HandlerFunc(apiController.GetSessions))
	routers.Post("/sessions/material", http.HandlerFunc(commandController.PrepareMaterial))
	routers.Post("/sessions/start", http.HandlerFunc(commandController.StartSession))
	routers.Post("/sessions/end", http.HandlerFunc(commandController.EndSession))
	routers.Post("/sessions/summary", http.HandlerFunc(commandController.RequestSummary))
	routers.Post("/sessions/reward", http.HandlerFunc(commandController.ClaimSessionReward))
	routers.Post("/sessions/credential", http.HandlerFunc(commandController.MintSessionCredential))

	routers.Get("/modules", http.HandlerFunc(apiController.GetModules))
	routers.Post("/modules/bonus", http.HandlerFunc(commandController.ClaimModuleBonus))

	routers.Get("/reminders", http.HandlerFunc(apiController.GetReminders))
	routers.Post("/reminders", http.HandlerFunc(commandController.AddReminder))

	routers.Get("/marketplace", http.HandlerFunc(apiController.GetMarketplace))
	routers.Post("/marketplace/quote", http.HandlerFunc(commandController.RequestPurchase))
	routers.Post("/marketplace/purchase", http.HandlerFunc(commandController.ConfirmPurchase))
	routers.Post("/p2p/convert", http.HandlerFunc(commandController.ConvertP2P))

	routers.Get("/tutors", http.HandlerFunc(apiController.GetTutors))
	routers.Get("/voices", http.HandlerFunc(apiController.GetVoices))
	routers.Get("/community", http.HandlerFunc(apiController.GetCommunity))
	return routers
}
