package plan

import (
	"fmt"
	"time"
)

// Renderer produces a textual command equivalent to the expiration
// update for one backup, for manual or audit use. Renderers never touch
// the network.
type Renderer interface {
	Render(backupName string, newExpire time.Time) string
	// Name identifies the rendering for headers and logs.
	Name() string
}

// CurlRenderer renders the raw PATCH call against the management API,
// authenticating with a gcloud-minted access token.
type CurlRenderer struct{}

func (CurlRenderer) Name() string { return "curl" }

func (CurlRenderer) Render(backupName string, newExpire time.Time) string {
	return fmt.Sprintf(`curl -X PATCH \
  -H "Authorization: Bearer $(gcloud auth print-access-token)" \
  -H "Content-Type: application/json" \
  -d '{"expireTime": %q}' \
  "https://backupdr.googleapis.com/v1/%s?updateMask=expireTime"`,
		newExpire.Format(time.RFC3339), backupName)
}

// GcloudRenderer renders the same update through gcloud's authenticated
// request proxy, so no explicit token handling is needed.
type GcloudRenderer struct{}

func (GcloudRenderer) Name() string { return "gcloud" }

func (GcloudRenderer) Render(backupName string, newExpire time.Time) string {
	return fmt.Sprintf(`gcloud curl -X PATCH \
  -H "Content-Type: application/json" \
  -d '{"expireTime": %q}' \
  "https://backupdr.googleapis.com/v1/%s?updateMask=expireTime"`,
		newExpire.Format(time.RFC3339), backupName)
}
