// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix for cached availability responses.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL keeps slot responses briefly; any booking write
// invalidates the affected date explicitly.
const AvailabilityCacheTTL = 60 * time.Second

// DistanceCachePrefix is the prefix for cached distance lookups.
const DistanceCachePrefix = "distance:"

// DistanceCacheTTL is the time-to-live for distance cache entries.
const DistanceCacheTTL = 30 * time.Minute

// AdminTokenTTL is the lifetime of an admin session token.
const AdminTokenTTL = 12 * time.Hour
