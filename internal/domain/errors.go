package domain

import "errors"

var (
	// ErrCategoryNotFound is returned for reads, updates and deletes of a
	// category id that does not exist. Update/delete check before mutating.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrStoreNotFound is returned when a store id does not exist or is not
	// owned by the requesting admin.
	ErrStoreNotFound = errors.New("store not found")
	// ErrSlugTaken is returned when a category create/update collides with an
	// existing (store_id, slug) pair.
	ErrSlugTaken = errors.New("category slug already in use for this store")

	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategorySlugRequired = errors.New("category slug is required")
	ErrCategorySlugInvalid  = errors.New("category slug may only contain lowercase letters, digits and hyphens")
	ErrStoreNameRequired    = errors.New("store name is required")

	// ErrEmailTaken is returned when registering an admin with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is unknown or
	// has expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrAdminNotFound is returned when an authenticated admin id no longer
	// resolves to an account.
	ErrAdminNotFound = errors.New("admin account not found")

	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrNameRequired     = errors.New("first and last name are required")
)
