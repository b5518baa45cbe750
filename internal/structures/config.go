package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Driver        string        `yaml:"driver" validate:"required|in:file,redis"`
	FilePath      string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval  time.Duration `yaml:"saveInterval" validate:"required"`
	RedisAddr     string        `yaml:"redisAddr"`
	RedisPassword string        `yaml:"redisPassword"`
	RedisDB       int           `yaml:"redisDB"`
	RedisKey      string        `yaml:"redisKey"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type StakingConfig struct {
	APY             float64       `yaml:"apy"`
	AccrualInterval time.Duration `yaml:"accrualInterval" validate:"required"`
}

// EconomyConfig holds the token prices and rewards. Zero values fall back to
// DefaultEconomy via WithDefaults.
type EconomyConfig struct {
	NewUserBalance       float64 `yaml:"newUserBalance"`
	ReturningUserBalance float64 `yaml:"returningUserBalance"`
	PremiumPrice         float64 `yaml:"premiumPrice"`
	PlatformFee          float64 `yaml:"platformFee"`
	OfficialMintFee      float64 `yaml:"officialMintFee"`
	ConversionRate       float64 `yaml:"conversionRate"`
	SessionReward        float64 `yaml:"sessionReward"`
	ModuleBonus          float64 `yaml:"moduleBonus"`
	ModuleBonusThreshold int     `yaml:"moduleBonusThreshold"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AIConfig struct {
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseURL"`
	Model          string        `yaml:"model"`
	Timeout        time.Duration `yaml:"timeout"`
	BreakerTimeout time.Duration `yaml:"breakerTimeout"`
	MaxFailures    uint32        `yaml:"maxFailures"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Staking     StakingConfig `yaml:"staking"`
	Economy     EconomyConfig `yaml:"economy"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	AI          AIConfig      `yaml:"ai"`
}

const (
	DefaultAPY             = 0.12
	DefaultAccrualInterval = time.Minute
)

func DefaultEconomy() EconomyConfig {
	return EconomyConfig{
		NewUserBalance:       500,
		ReturningUserBalance: 1250,
		PremiumPrice:         250,
		PlatformFee:          0.025,
		OfficialMintFee:      50,
		ConversionRate:       0.05,
		SessionReward:        100,
		ModuleBonus:          500,
		ModuleBonusThreshold: 5,
	}
}

func (e EconomyConfig) WithDefaults() EconomyConfig {
	d := DefaultEconomy()
	if e.NewUserBalance > 0 {
		d.NewUserBalance = e.NewUserBalance
	}
	if e.ReturningUserBalance > 0 {
		d.ReturningUserBalance = e.ReturningUserBalance
	}
	if e.PremiumPrice > 0 {
		d.PremiumPrice = e.PremiumPrice
	}
	if e.PlatformFee > 0 {
		d.PlatformFee = e.PlatformFee
	}
	if e.OfficialMintFee > 0 {
		d.OfficialMintFee = e.OfficialMintFee
	}
	if e.ConversionRate > 0 {
		d.ConversionRate = e.ConversionRate
	}
	if e.SessionReward > 0 {
		d.SessionReward = e.SessionReward
	}
	if e.ModuleBonus > 0 {
		d.ModuleBonus = e.ModuleBonus
	}
	if e.ModuleBonusThreshold > 0 {
		d.ModuleBonusThreshold = e.ModuleBonusThreshold
	}
	return d
}

func (s StakingConfig) WithDefaults() StakingConfig {
	if s.APY <= 0 {
		s.APY = DefaultAPY
	}
	if s.AccrualInterval <= 0 {
		s.AccrualInterval = DefaultAccrualInterval
	}
	return s
}
