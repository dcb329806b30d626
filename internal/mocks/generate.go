// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the repository and port interfaces. To regenerate after interface
// changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=post_repository_mock.go github.com/dataetica/dataetica-api/internal/core PostRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=category_repository_mock.go github.com/dataetica/dataetica-api/internal/core CategoryRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/dataetica/dataetica-api/internal/core UserRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=audit_repository_mock.go github.com/dataetica/dataetica-api/internal/core AuditRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_codec_mock.go github.com/dataetica/dataetica-api/internal/ports TokenCodec
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=post_cache_mock.go github.com/dataetica/dataetica-api/internal/ports PostCache
