package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-vault/models"
)

const vaultRecordsTable = "vault_records"

var vaultRecordColumns = []string{
	"id",
	"user_id",
	"title",
	"username",
	"password",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

func buildListRecordsQuery(ph sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Select(vaultRecordColumns...).
		From(vaultRecordsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		PlaceholderFormat(ph).
		ToSql()
}

func buildGetRecordQuery(ph sq.PlaceholderFormat, userID, id string) (string, []any, error) {
	return sq.Select(vaultRecordColumns...).
		From(vaultRecordsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertRecordQuery(ph sq.PlaceholderFormat, r models.VaultRecord, now time.Time) (string, []any, error) {
	return sq.Insert(vaultRecordsTable).
		Columns(vaultRecordColumns...).
		Values(r.ID, r.UserID, r.Title, r.Username, r.Password, r.URL, r.Notes, now, now).
		PlaceholderFormat(ph).
		ToSql()
}

func buildUpdateRecordQuery(ph sq.PlaceholderFormat, r models.VaultRecord, now time.Time) (string, []any, error) {
	return sq.Update(vaultRecordsTable).
		Set("title", r.Title).
		Set("username", r.Username).
		Set("password", r.Password).
		Set("url", r.URL).
		Set("notes", r.Notes).
		Set("updated_at", now).
		Where(sq.Eq{"id": r.ID, "user_id": r.UserID}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteRecordQuery(ph sq.PlaceholderFormat, userID, id string) (string, []any, error) {
	return sq.Delete(vaultRecordsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}
