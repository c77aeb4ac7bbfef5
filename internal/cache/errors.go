package cache

import "errors"

var (
	ErrDirEmpty        = errors.New("cache dir is empty")
	ErrNotInitialized  = errors.New("cache dir not initialized")
	ErrManifestInvalid = errors.New("invalid cache manifest")
	ErrLock            = errors.New("cannot lock cache dir")
)
