package service

type PasswordService interface {
	// Hash derives a self-describing encoded digest (algorithm, params and
	// per-account salt included) from the plaintext.
	Hash(password string) (string, error)

	// Verify re-derives the digest from the plaintext using the parameters
	// embedded in encoded and compares in constant time.
	Verify(password, encoded string) bool
}
