package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProfileNotFound = errors.New("profile not found")
var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrEntryNotFound = errors.New("entry not found")
var ErrForbidden = errors.New("access forbidden")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post not liked yet")
var ErrStorageUnavailable = errors.New("storage unavailable")

// AssertOwner gates destructive operations on a resource. It succeeds only
// when the caller is the recorded owner of the resource.
func AssertOwner(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
