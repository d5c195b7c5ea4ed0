package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Admin SDK. Inline JSON credentials win over a file
// path; with neither, application default credentials are used.
func NewApp(ctx context.Context, projectID, credentialsJSON, credentialsPath string) (*firebase.App, error) {
	var opts []option.ClientOption
	switch {
	case credentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	case credentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	return app, nil
}

// ClientOptions returns the same credentials for the non-Firebase Google clients.
func ClientOptions(credentialsJSON, credentialsPath string) []option.ClientOption {
	switch {
	case credentialsJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(credentialsJSON))}
	case credentialsPath != "":
		return []option.ClientOption{option.WithCredentialsFile(credentialsPath)}
	}
	return nil
}
