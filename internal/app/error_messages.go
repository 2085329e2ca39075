// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// secure-vault agent handlers, services and terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, toasts or log entries. Placeholder* constants are the
// display values shown in place of a secret that cannot be presented.
// Keeping them in one place ensures consistent wording throughout.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when an operation needs the stable
	// user identifier and none was supplied.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgMalformedEnvelope is returned when a stored envelope is not valid
	// Base64 or carries an IV of the wrong size.
	MsgMalformedEnvelope = "stored value is malformed"

	// MsgCannotDecrypt is returned when a value was encrypted under another
	// identity, was tampered with, or decrypts to nothing. Re-entering and
	// saving the value is the only remedy.
	MsgCannotDecrypt = "value cannot be decrypted with your account key, edit and save it again"

	// MsgDataNotFound is returned when an operation targets a vault record
	// that does not exist for the current user.
	MsgDataNotFound = "data not found"

	// MsgUpstreamUnavailable is returned when the remote vault API or the
	// database cannot be reached.
	MsgUpstreamUnavailable = "vault storage is unavailable, try again later"

	// MsgAccessDenied is returned when the remote vault API rejects the
	// caller's identity.
	MsgAccessDenied = "access denied"

	// MsgVersionIsNotSpecified is returned when the application was started
	// without a version string.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgLegacyLoaded is shown when a legacy entry is opened for editing.
	MsgLegacyLoaded = "Legacy loaded. Edit & save to decrypt with your account key."

	// MsgSaved is shown after a record was written.
	MsgSaved = "Entry saved & decrypted for viewing!"

	// MsgDeleted is shown after a record was removed.
	MsgDeleted = "Deleted"

	// MsgCopied is shown after a value was copied; %s is the field name and
	// %s the clear delay.
	MsgCopied = "%s copied! Clears in %s"
)

const (
	// PlaceholderEncrypted replaces an envelope that could not be decrypted.
	PlaceholderEncrypted = "[Encrypted - Edit to decrypt]"

	// PlaceholderNoValue replaces an empty field.
	PlaceholderNoValue = "[No Value]"

	// PlaceholderNoUsername replaces an empty username in listings.
	PlaceholderNoUsername = "[No Username]"

	// PlaceholderNoPassword replaces an empty password in listings.
	PlaceholderNoPassword = "[No Password]"
)

// Placeholders returns every display placeholder. None of them may ever be
// encrypted and saved as a real value.
func Placeholders() []string {
	return []string{PlaceholderEncrypted, PlaceholderNoValue, PlaceholderNoUsername, PlaceholderNoPassword}
}
