package database

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrSVGNotFound          = errors.New("svg not found")
	ErrForbidden            = errors.New("you do not have permission to modify this resource")
	ErrInvalidColor         = errors.New("invalid project color")
	ErrProjectNotPublic     = errors.New("only public projects can be forked")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmailTaken           = errors.New("a user with this email already exists")
)
