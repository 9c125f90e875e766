package crypto

// PasswordHasher produces storage-ready password hashes. Implementations
// must never log or retain the plaintext they are given.
type PasswordHasher interface {
	// Hash derives a one-way hash of password with a fresh random salt and
	// returns it in self-describing PHC string form, suitable for direct
	// storage and later verification.
	Hash(password string) (string, error)

	// Verify reports whether password matches the PHC string encoded.
	// No endpoint invokes it yet; stored hashes must stay compatible with it.
	Verify(password, encoded string) (bool, error)
}
