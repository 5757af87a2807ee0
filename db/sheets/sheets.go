package sheets

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"fueldelivery/models"
)

// SheetsDB holds an authorized Google Sheets client.
type SheetsDB struct {
	Service         *gsheets.Service
	CredentialsFile string
	CredentialsJSON string
}

func NewSheetsDB(credentialsFile, credentialsJSON string) *SheetsDB {
	return &SheetsDB{
		CredentialsFile: credentialsFile,
		CredentialsJSON: credentialsJSON,
	}
}

// Connect builds the service from service-account credentials. Missing
// credentials are a configuration error, not a store outage.
func (s *SheetsDB) Connect() error {
	var cred option.ClientOption
	switch {
	case s.CredentialsJSON != "":
		cred = option.WithCredentialsJSON([]byte(s.CredentialsJSON))
	case s.CredentialsFile != "":
		cred = option.WithCredentialsFile(s.CredentialsFile)
	default:
		return errors.Wrap(models.ErrConfigMissing, "SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON is required")
	}

	// the token source keeps this context for refreshes
	svc, err := gsheets.NewService(context.Background(), cred, option.WithScopes(gsheets.SpreadsheetsScope))
	if err != nil {
		return models.StoreError("create sheets client", err)
	}
	s.Service = svc
	return nil
}

// Disconnect drops the client; the HTTP transport holds no open session.
func (s *SheetsDB) Disconnect() error {
	s.Service = nil
	return nil
}
