package ports

// PasswordHasher is the one-way credential hashing capability. Raw passwords
// never cross this boundary in the other direction.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}
