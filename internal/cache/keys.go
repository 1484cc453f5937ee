package cache

import "strings"

const (
	GlobalKeyPrefix = "culturematch"
)

// GenerateCacheKey builds "<prefix>:<service>:<object>:<identifier>", appending
// paramsKey joined by "_" as a final segment when given.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}
