package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"studynexus/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("persistence.driver", "file")
	v.SetDefault("persistence.redisKey", "studynexus:storage")
	v.SetDefault("staking.apy", structures.DefaultAPY)
	v.SetDefault("staking.accrualInterval", structures.DefaultAccrualInterval)
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("ai.baseURL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.breakerTimeout", "30s")
	v.SetDefault("ai.maxFailures", 5)

	_ = v.BindEnv("logger.level", "NEXUS_LOG_LEVEL")
	_ = v.BindEnv("staking.accrualInterval", "NEXUS_ACCRUAL_INTERVAL")
	_ = v.BindEnv("persistence.saveInterval", "NEXUS_SAVE_INTERVAL")
	_ = v.BindEnv("persistence.driver", "NEXUS_PERSISTENCE_DRIVER")
	_ = v.BindEnv("persistence.redisAddr", "NEXUS_REDIS_ADDR")
	_ = v.BindEnv("cache.enabled", "NEXUS_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "NEXUS_CACHE_SIZE")
	_ = v.BindEnv("ai.apiKey", "NEXUS_AI_API_KEY")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.Staking = conf.Staking.WithDefaults()
	conf.Economy = conf.Economy.WithDefaults()
	conf.AppName = "StudyNexus"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
