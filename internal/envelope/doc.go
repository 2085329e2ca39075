// Package envelope recognises the persisted form of an encrypted vault field.
//
// A stored field is one of three things: a JSON-encoded [models.Envelope]
// (possibly JSON-encoded twice by older clients), a legacy plaintext string
// written before encryption existed, or something that is neither. [Classify]
// tells them apart without ever failing; [Encode] produces the current
// storage format.
package envelope
