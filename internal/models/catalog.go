package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type TutorRole string

const (
	RoleExplainer  TutorRole = "Explainer"
	RoleQuizMaster TutorRole = "Quiz Master"
	RoleSkeptic    TutorRole = "Skeptic"
	RoleSummarizer TutorRole = "Summarizer"
)

type Tutor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	Role        TutorRole `json:"role"`
	Description string    `json:"description"`
	AvatarURL   string    `json:"avatarUrl"`
}

type Voice struct {
	Name      string `json:"name"`
	SampleURL string `json:"sampleUrl"`
}

type LearningModule struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

const (
	BnsCredentialID      = "nft-bns"
	FirstSessionID       = "nft-1"
	OfficialCredentialID = "nft-official-1"
	DefaultVoice         = "Zephyr"
)

var Tutors = []Tutor{
	{
		ID:          "clara-explainer",
		Name:        "Clara",
		Gender:      "female",
		Role:        RoleExplainer,
		Description: "Breaks down complex topics into simple, understandable concepts.",
		AvatarURL:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
	},
	{
		ID:          "ben-quizzer",
		Name:        "Ben",
		Gender:      "male",
		Role:        RoleQuizMaster,
		Description: "Asks challenging questions to test understanding and recall.",
		AvatarURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
	},
	{
		ID:          "aria-skeptic",
		Name:        "Aria",
		Gender:      "female",
		Role:        RoleSkeptic,
		Description: "Challenges assumptions and encourages critical thinking.",
		AvatarURL:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
	},
	{
		ID:          "leo-summarizer",
		Name:        "Leo",
		Gender:      "male",
		Role:        RoleSummarizer,
		Description: "Synthesizes information and provides clear, concise summaries.",
		AvatarURL:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
	},
}

var Voices = []Voice{
	{Name: "Zephyr", SampleURL: "https://cdn.pixabay.com/audio/2022/11/17/audio_8332b60b73.mp3"},
	{Name: "Puck", SampleURL: "https://cdn.pixabay.com/audio/2023/09/23/audio_735a242137.mp3"},
	{Name: "Charon", SampleURL: "https://cdn.pixabay.com/audio/2021/08/25/audio_5539560f1c.mp3"},
	{Name: "Kore", SampleURL: "https://cdn.pixabay.com/audio/2022/03/15/audio_339db722a8.mp3"},
	{Name: "Fenrir", SampleURL: "https://cdn.pixabay.com/audio/2022/03/15/audio_b292d308b0.mp3"},
}

var MockCredentials = []NFTCredential{
	{
		ID:              FirstSessionID,
		Name:            "First Session Completion",
		Description:     "Awarded for successfully completing your first AI study session.",
		ImageURL:        "https://placehold.co/400x400/7c3aed/ffffff?text=1st+Session",
		Date:            "2024-07-28",
		TransactionHash: "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcd",
	},
	{
		ID:              OfficialCredentialID,
		Name:            "Official Course Completion: Cardiology 101",
		Description:     "Verified by Nexus University of Medicine.",
		ImageURL:        "https://placehold.co/400x400/0ea5e9/ffffff?text=Cardiology+101",
		Date:            "2024-08-01",
		TransactionHash: "0xabc1234567890abcdef1234567890abcdef1234567890abcdef1234567890",
		IsOfficial:      true,
	},
}

var MarketplaceItems = []MarketplaceItem{
	{
		ID:                    "item-1",
		Name:                  "Cardiology Mnemonics",
		Description:           "A comprehensive PDF with mnemonics for common cardiology drugs.",
		CreatorBns:            "cardiogod.base",
		Price:                 decimal.NewFromInt(50),
		ImageURL:              "https://placehold.co/400x300/be185d/ffffff?text=PDF",
		CreatorRoyaltyPercent: 95,
	},
	{
		ID:                    "item-2",
		Name:                  "Pharmacology Flashcards",
		Description:           "Spaced-repetition deck covering the top 200 prescribed drugs.",
		CreatorBns:            "emily.base",
		Price:                 decimal.NewFromInt(120),
		ImageURL:              "https://placehold.co/400x300/16a34a/ffffff?text=Deck",
		CreatorRoyaltyPercent: 90,
	},
}

var Students = []UserProfile{
	{
		Address:           "0x1",
		Bns:               "emily.base",
		Balance:           decimal.NewFromInt(1200),
		Subscription:      SubscriptionPremium,
		ProfilePictureURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
		School:            "Nexus Medical Academy",
		Major:             "Pharmacology",
	},
	{
		Address:           "0x2",
		Bns:               "anna.base",
		Balance:           decimal.NewFromInt(850),
		Subscription:      SubscriptionFree,
		ProfilePictureURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop",
		School:            "Base University",
		Major:             "Cardiology",
	},
	{
		Address:           "0x3",
		Bns:               "jake.base",
		Balance:           decimal.NewFromInt(2100),
		Subscription:      SubscriptionPremium,
		ProfilePictureURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop",
		School:            "Global Health Institute",
		Major:             "Surgery",
	},
}

var LearningModules = []LearningModule{
	{
		ID:          "what-is-base",
		Title:       "Module 1: What is Base?",
		Description: "Understand the fundamentals of Base as a secure, low-cost Ethereum L2.",
		Content:     "Base is a secure, low-cost, builder-friendly Ethereum Layer 2 (L2) built to bring the next billion users onchain.",
	},
	{
		ID:          "wallets-and-keys",
		Title:       "Module 2: Wallets and Keys",
		Description: "Learn how wallets hold keys and sign transactions.",
		Content:     "A wallet stores the private key that proves ownership of an address and signs every transaction sent from it.",
	},
	{
		ID:          "gas-and-fees",
		Title:       "Module 3: Gas and Fees",
		Description: "Why transactions cost gas and how L2s make them cheaper.",
		Content:     "Gas measures computation. Layer 2 networks batch many transactions into one L1 submission, sharing its cost.",
	},
	{
		ID:          "tokens-and-nfts",
		Title:       "Module 4: Tokens and NFTs",
		Description: "Fungible tokens versus unique collectibles.",
		Content:     "Fungible tokens are interchangeable units; NFTs carry a unique identifier and represent one specific item.",
	},
	{
		ID:          "staking-basics",
		Title:       "Module 5: Staking Basics",
		Description: "Locking tokens to earn rewards.",
		Content:     "Staking locks tokens for a period; rewards accrue in proportion to the amount staked and the time it stays locked.",
	},
	{
		ID:          "onchain-identity",
		Title:       "Module 6: Onchain Identity",
		Description: "Names, profiles and credentials that live onchain.",
		Content:     "Onchain names map human-readable labels to addresses, and credentials attest achievements to that identity.",
	},
}

func FindTutor(id string) (Tutor, bool) {
	for _, t := range Tutors {
		if t.ID == id {
			return t, true
		}
	}
	return Tutor{}, false
}

func FindVoice(name string) (Voice, bool) {
	for _, v := range Voices {
		if v.Name == name {
			return v, true
		}
	}
	return Voice{}, false
}

func FindMarketplaceItem(id string) (MarketplaceItem, bool) {
	for _, it := range MarketplaceItems {
		if it.ID == id {
			return it, true
		}
	}
	return MarketplaceItem{}, false
}

func FindLearningModule(id string) (LearningModule, bool) {
	for _, m := range LearningModules {
		if m.ID == id {
			return m, true
		}
	}
	return LearningModule{}, false
}

func FindMockCredential(id string) (NFTCredential, bool) {
	for _, c := range MockCredentials {
		if c.ID == id {
			return c, true
		}
	}
	return NFTCredential{}, false
}

// SearchStudents matches term case-insensitively against name, major and
// school, skipping the student with excludeAddress.
func SearchStudents(term, excludeAddress string) []UserProfile {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]UserProfile, 0, len(Students))
	for _, s := range Students {
		if s.Address == excludeAddress {
			continue
		}
		if term == "" ||
			strings.Contains(strings.ToLower(s.Bns), term) ||
			strings.Contains(strings.ToLower(s.Major), term) ||
			strings.Contains(strings.ToLower(s.School), term) {
			out = append(out, s)
		}
	}
	return out
}
