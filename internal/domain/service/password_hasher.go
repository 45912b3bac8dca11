package service

// PasswordHasher abstracts password hashing so the usecase layer does not
// depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash returns the salted hash of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
