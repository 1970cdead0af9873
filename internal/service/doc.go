// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. AccountService:
//   - Registration with an email uniqueness probe before insert
//   - Login with password verification and token issuance
//   - Profile lookup and partial profile edits
//
// 2. CatalogService:
//   - Podcast listing, creation, retrieval, update and deletion
//   - Episode operations, always resolved through the parent podcast
//
// 3. Result envelope:
//   - Every operation returns an Output (or a type embedding it) instead of an error
//   - Business rejections carry a specific message and FailureKind
//   - Infrastructure failures are logged with redaction and surface as a generic message
//
// Services receive their dependencies through constructor injection and depend
// only on the store interfaces, never on a specific database implementation.
package service
