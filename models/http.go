package models

// EncryptFieldRequest asks the agent to encrypt one plaintext value for the
// caller's identity.
type EncryptFieldRequest struct {
	PlainText string `json:"plainText"`
}

// EncryptFieldResponse carries the envelope together with its stored form.
type EncryptFieldResponse struct {
	Envelope Envelope `json:"envelope"`

	// Stored is the envelope serialised as the string persisted in a record
	// field.
	Stored string `json:"stored"`
}

// DecryptFieldRequest asks the agent to open an envelope.
type DecryptFieldRequest struct {
	Envelope Envelope `json:"envelope"`
}

// DecryptFieldResponse carries the recovered plaintext.
type DecryptFieldResponse struct {
	PlainText string `json:"plainText"`
}

// ReconcileFieldRequest carries a raw stored field value of unknown format.
type ReconcileFieldRequest struct {
	Raw string `json:"raw"`
}

// ReconcileRecordsRequest carries stored records for a best-effort
// decrypted listing.
type ReconcileRecordsRequest struct {
	Records []VaultRecord `json:"records"`
}

// ReconcileRecordsResponse is the decrypted listing, in request order.
type ReconcileRecordsResponse struct {
	Entries []VaultEntry `json:"entries"`

	// Legacy is the number of entries flagged for re-save.
	Legacy int `json:"legacy"`
}

// GeneratePasswordResponse carries a freshly generated password.
type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// VersionResponse describes the running agent build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
