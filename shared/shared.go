package shared

import (
	"context"
	"math"
	"strconv"
	"strings"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
	moneyScale        = 100
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins the prefix and parts into a single redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches removes every key under the given prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// RoundMoney rounds an amount to two decimals for presentation.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*moneyScale) / moneyScale
}
