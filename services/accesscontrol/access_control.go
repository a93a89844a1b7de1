package accesscontrol

import (
	"strconv"
	"sync"

	"github.com/duke-git/lancet/v2/slice"

	"healthbot/utils"
)

// InitAccessControl initializes the access control system
func InitAccessControl(cfg *Config) error {
	InitConfig(cfg)
	currentDateFlag = utils.GetCurrentDateAsString()
	return nil
}

var accessCountMap = sync.Map{}
var currentDateFlag = ""

/*
CheckAllowAccessThenIncrement returns false when the user has exhausted the
daily request quota, otherwise increments the user's count and returns true.
Admins are never limited. The counters reset on date change.
*/
func CheckAllowAccessThenIncrement(userID string) bool {
	// Begin a new day, clear the accessCountMap
	currentDateAsString := utils.GetCurrentDateAsString()
	if currentDateFlag != currentDateAsString {
		accessCountMap = sync.Map{}
		currentDateFlag = currentDateAsString
	}

	if CheckAllowAccess(userID) {
		accessedCount, ok := accessCountMap.Load(userID)
		if !ok {
			accessCountMap.Store(userID, 1)
		} else {
			accessCountMap.Store(userID, accessedCount.(int)+1)
		}
		return true
	}

	return false
}

// CheckAllowAccess reports whether the user is still under the daily quota.
func CheckAllowAccess(userID string) bool {
	if GetConfig().AccessControlMaxCountPerUserPerDay <= 0 {
		return true
	}

	if IsAdmin(userID) {
		return true
	}

	accessedCount, ok := accessCountMap.Load(userID)
	if !ok {
		accessCountMap.Store(userID, 0)
		return true
	}

	return accessedCount.(int) < GetConfig().AccessControlMaxCountPerUserPerDay
}

// IsAdmin reports whether the user ID is in the admin allow-list.
func IsAdmin(userID string) bool {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return false
	}
	return slice.Contain(GetConfig().AdminUserIDs, id)
}

func GetCurrentDateFlag() string {
	return currentDateFlag
}

func GetAccessCountMap() *sync.Map {
	return &accessCountMap
}
