package ports

// CredentialVerifier compares a submitted secret against a stored hash.
// Hash is used only at registration, Verify only at login.
type CredentialVerifier interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
}
