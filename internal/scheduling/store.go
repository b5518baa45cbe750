package scheduling

import (
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"
	"studynexus/internal/structures"
)

func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.StoreInterface {
	if conf.Persistence.Driver == "redis" {
		logger.Infof(providers.TypeApp, "Persistence: redis %s key=%s", conf.Persistence.RedisAddr, conf.Persistence.RedisKey)
		return NewRedisStore(conf, compressor, logger)
	}
	logger.Infof(providers.TypeApp, "Persistence: file %s", conf.Persistence.FilePath)
	return NewFileManager(conf, compressor, logger)
}
