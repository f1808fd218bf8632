// Package models defines the persisted rows and HTTP shapes of the games
// feature.
//
// UserOwnership and GameRecord are the two GORM tables backing the
// cache-aside stores. The remaining types are request/response shapes and
// are never persisted.
package models
