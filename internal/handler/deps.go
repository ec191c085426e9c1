package handler

import (
	"brana/internal/app/auth"
	"brana/internal/app/book"
	"brana/internal/app/storage"
	"brana/internal/configs"
)

// AppDeps bundles the collaborators the handlers need.
type AppDeps struct {
	Config *configs.AppConfig
	Auth   *auth.Service
	Books  book.Store

	// Storage is nil when no S3 endpoint is configured (development);
	// the cover endpoints then report storage unavailable.
	Storage storage.StorageService
}
