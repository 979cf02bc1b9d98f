package ports

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator mints opaque fixed-length session identifiers.
// Implementations must draw from a cryptographically secure source; the
// token is a bearer credential.
type TokenGenerator interface {
	Generate() (string, error)
}
