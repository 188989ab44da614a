// Package telemetry reports errors to Sentry when a DSN is configured.
package telemetry

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/build"
)

var log = logging.Logger("telemetry")

// SetupErrorReporting configures the Sentry SDK for error reporting. With an
// empty dsn nothing is configured and ReportError does nothing.
func SetupErrorReporting(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     build.Version,
		Transport:   sentry.NewHTTPSyncTransport(),
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	log.Infow("error reporting enabled", "environment", environment)
	return nil
}

// ReportError reports an error to Sentry
func ReportError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}
