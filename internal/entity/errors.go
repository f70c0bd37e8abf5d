package entity

import "igclone/pkg/errs"

var (
	ErrUserNotFound       = errs.New(errs.ENOTFOUND, "user not found")
	ErrPostNotFound       = errs.New(errs.ENOTFOUND, "post not found")
	ErrEmailTaken         = errs.New(errs.ECONFLICT, "email already registered")
	ErrInvalidCredentials = errs.New(errs.EUNAUTHORIZED, "invalid email or password")

	ErrSelfFollow       = errs.New(errs.ECONFLICT, "you cannot follow yourself")
	ErrAlreadyFollowing = errs.New(errs.ECONFLICT, "you are already following this user")
	ErrNotFollowing     = errs.New(errs.ENOTFOUND, "follow relationship not found")

	ErrAlreadyLiked = errs.New(errs.ECONFLICT, "you have already liked this post")
	ErrNotLiked     = errs.New(errs.ENOTFOUND, "you have not liked this post")

	ErrEmptyContent      = errs.New(errs.EINVALID, "content must not be empty")
	ErrPostForbidden     = errs.New(errs.EFORBIDDEN, "you are not authorized to view this post")
	ErrNotPostOwner      = errs.New(errs.EFORBIDDEN, "you are not authorized to modify this post")
	ErrNotAccountOwner   = errs.New(errs.EFORBIDDEN, "you are not authorized to modify this user")
	ErrProfileForbidden  = errs.New(errs.EFORBIDDEN, "you are not allowed to view this user's profile")
	ErrFeedForbidden     = errs.New(errs.EFORBIDDEN, "you are not allowed to view this user's posts")
	ErrImagesUnavailable = errs.New(errs.EINVALID, "image uploads are not configured")
)

var (
	ErrInvalidSkip      = errs.New(errs.EINVALID, "skip must be greater than or equal to 0")
	ErrInvalidOffset    = errs.New(errs.EINVALID, "offset must be greater than or equal to 0")
	ErrInvalidSortBy    = errs.New(errs.EINVALID, "sort_by must be one of: created_at, likes")
	ErrInvalidSortOrder = errs.New(errs.EINVALID, "sort_order must be one of: asc, desc")
	ErrEmptyName        = errs.New(errs.EINVALID, "name must not be empty")
	ErrPasswordTooLong  = errs.New(errs.EINVALID, "password must be at most 72 bytes")
	ErrEmptySearch      = errs.New(errs.EINVALID, "search must not be empty")
	ErrImageType        = errs.New(errs.EINVALID, "image must be jpeg, png, gif or webp")
)
