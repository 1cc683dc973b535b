package contract

type IHasher interface {
	// HashPassword derives a one-way salted hash from the plaintext password.
	HashPassword(password string) (string, error)
	// ComparePasswordHash checks a plaintext password against a stored hash.
	// The comparison is constant-time with respect to the secret.
	ComparePasswordHash(password, hashedPassword string) error
}
