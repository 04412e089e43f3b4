package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("Invalid request parameter")
	ErrUserNotFound     = errors.New("User not found")
	ErrPostNotFound     = errors.New("Post not found")
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrLikeNotFound     = errors.New("Like not found")
	ErrFollowerNotFound = errors.New("Follower not found")
	ErrFolloweeNotFound = errors.New("Followee not found")
	ErrFeedItemNotFound = errors.New("Feed item not found")
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
	ErrFileNotSupported = errors.New("Unsupported file type")
	UnExpectedError     = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrPostNotFound:     NotFound,
	ErrCommentNotFound:  NotFound,
	ErrLikeNotFound:     NotFound,
	ErrFollowerNotFound: NotFound,
	ErrFolloweeNotFound: NotFound,
	ErrFeedItemNotFound: NotFound,
	ErrInvalidEmail:     UnprocessableEntity,
	ErrNoFieldsToUpdate: BadRequest,
	ErrFileNotSupported: UnprocessableEntity,
	UnExpectedError:     InternalServerError,
}
