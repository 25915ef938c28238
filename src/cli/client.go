package cli

import (
	"context"
	"time"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
)

// newClient builds the management API client. Package-level so tests
// can substitute a fake.
var newClient = func(ctx context.Context, credentialsFile string, timeout time.Duration) (backupdr.Client, error) {
	c, err := backupdr.Connect(ctx, backupdr.Options{
		CredentialsFile: credentialsFile,
		CallTimeout:     timeout,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetClientFactoryForTest swaps the client factory and returns a restore
// function.
func SetClientFactoryForTest(f func(context.Context, string, time.Duration) (backupdr.Client, error)) func() {
	prev := newClient
	newClient = f
	return func() { newClient = prev }
}
