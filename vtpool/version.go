package vtpool

import "github.com/google/uuid"

// VersionTag identifies a loaded pool by content. It labels the pool that
// was parsed, not the current runtime state: in-place mutations after a
// successful parse do not change it.
type VersionTag string

// VersionFunc computes a VersionTag from the raw pool bytes. Callers with an
// external pool versioning scheme (stored IOP versions, CRC registries)
// inject their own via WithVersionFunc.
type VersionFunc func(data []byte) VersionTag

// versionNamespace scopes pool version UUIDs so they cannot collide with
// SHA-1 UUIDs derived from the same bytes elsewhere.
var versionNamespace = uuid.MustParse("8f2d51be-4c71-45d9-a6ce-9e1b0d7c3a42")

// SHA1Version is the default VersionFunc: a deterministic name-based UUID
// (RFC 4122 version 5) over the raw pool bytes.
func SHA1Version(data []byte) VersionTag {
	return VersionTag(uuid.NewSHA1(versionNamespace, data).String())
}
