package services

import (
	"errors"
	"strings"

	"aquavalle-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ClientInput carries the identity fields from a booking request.
type ClientInput struct {
	FullName   string
	IDDocument string
	Phone      string
	Email      *string
}

// NormalizeName case-folds a full name and collapses internal whitespace so
// "ANA  PEREZ" and "Ana Perez" compare equal.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// SameName compares two full names under normalization.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// resolveClient looks a client up by identity document inside the booking
// transaction. Unknown documents create a new record. A known document with
// a materially different name rejects the whole booking; a match updates
// phone and email only, keeping the stored name canonical.
func resolveClient(tx *gorm.DB, in ClientInput) (*models.Client, error) {
	var client models.Client
	err := tx.Where("id_document = ?", in.IDDocument).First(&client).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStore(err)
		}
		client = models.Client{
			IDDocument: in.IDDocument,
			FullName:   strings.TrimSpace(in.FullName),
			Phone:      in.Phone,
			Email:      in.Email,
		}
		if err := tx.Create(&client).Error; err != nil {
			// Upsert by document: a concurrent first booking may have won the
			// unique-index race, in which case the existing record is reused.
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
				if err := tx.Unscoped().Where("id_document = ?", in.IDDocument).First(&client).Error; err != nil {
					return nil, ErrStore(err)
				}
				if !SameName(client.FullName, in.FullName) {
					return nil, ErrIdentityConflict(in.IDDocument, client.FullName)
				}
				return &client, nil
			}
			return nil, ErrStore(err)
		}
		return &client, nil
	}

	if !SameName(client.FullName, in.FullName) {
		return nil, ErrIdentityConflict(in.IDDocument, client.FullName)
	}

	updates := map[string]any{"phone": in.Phone}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if err := tx.Model(&client).Updates(updates).Error; err != nil {
		return nil, ErrStore(err)
	}
	return &client, nil
}
