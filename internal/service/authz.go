package service

import "github.com/cobaltlane/taskhub/internal/domain"

// authorizeOwnership is the single ownership check for task access: the
// authenticated identity must be the task's owner. Callers surface a
// denial as store.ErrNotFound so non-owners cannot distinguish "exists
// but not yours" from "does not exist".
func authorizeOwnership(userID string, t domain.Task) bool {
	return userID != "" && t.OwnerID == userID
}
