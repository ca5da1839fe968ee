package profile

import (
	"encoding/json"
	"log"
	"time"

	"everbloom/models"
	"everbloom/rdx"
)

const profileCacheTTL = 10 * time.Minute

func cacheKey(userID string) string { return "profile:" + userID }

func cacheProfile(userID string, p models.UserProfileResponse) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := rdx.SetWithExpiry(cacheKey(userID), string(data), profileCacheTTL); err != nil {
		log.Printf("profile: cache %s: %v", userID, err)
	}
}

func cachedProfile(userID string) (models.UserProfileResponse, bool) {
	data, err := rdx.RdxGet(cacheKey(userID))
	if err != nil {
		return models.UserProfileResponse{}, false
	}
	var p models.UserProfileResponse
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.UserProfileResponse{}, false
	}
	return p, true
}

// InvalidateCachedProfile drops the cached profile JSON so the next read
// fetches fresh data.
func InvalidateCachedProfile(userID string) {
	if err := rdx.RdxDel(cacheKey(userID)); err != nil {
		log.Printf("profile: invalidate cache %s: %v", userID, err)
	}
}
