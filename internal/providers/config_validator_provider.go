package providers

import (
	"errors"
	"fmt"
	"studynexus/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}
	if cv.conf.Persistence.Driver == "redis" && cv.conf.Persistence.RedisAddr == "" {
		return errors.New("invalid config: persistence.redisAddr is required for the redis driver")
	}
	if cv.conf.Staking.APY < 0 {
		return errors.New("invalid config: staking.apy must not be negative")
	}
	return nil
}
