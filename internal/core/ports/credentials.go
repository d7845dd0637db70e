package ports

// CredentialHasher is the one-way password hashing capability. Hash output is
// opaque; only Verify can relate a plaintext back to it.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer produces and validates signed, time-bounded session tokens
// asserting (subject id, role). Issue failures are fatal for the request and
// must propagate to the caller untranslated.
type TokenIssuer interface {
	Issue(subjectID, role string) (string, error)
	Validate(token string) (subjectID, role string, err error)
}

// PasswordPolicy is the strength predicate gating registration and password
// change.
type PasswordPolicy interface {
	IsAcceptable(plaintext string) bool
}
