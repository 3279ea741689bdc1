package googleauth

import (
	"encoding/json"
	"errors"
	"os"

	"google.golang.org/api/option"
)

// ErrNoCredentials means no usable credential source was found. The process
// still starts; upstream-backed endpoints report a configuration error.
var ErrNoCredentials = errors.New("no google credentials found")

const localCredentialsFile = "credentials.json"

// Options resolves Google API credentials in preference order: an inline JSON
// blob in GOOGLE_CREDENTIALS_JSON, a file path in
// GOOGLE_APPLICATION_CREDENTIALS, then a credentials.json in the working
// directory. An unparseable blob falls through to the next source.
func Options() ([]option.ClientOption, error) {
	if blob := os.Getenv("GOOGLE_CREDENTIALS_JSON"); blob != "" && json.Valid([]byte(blob)) {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(blob))}, nil
	}
	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return []option.ClientOption{option.WithCredentialsFile(path)}, nil
		}
	}
	if _, err := os.Stat(localCredentialsFile); err == nil {
		return []option.ClientOption{option.WithCredentialsFile(localCredentialsFile)}, nil
	}
	return nil, ErrNoCredentials
}
