// Package version provides build-time version information.
//
// Set the variables with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/echoapi/version.Version=1.2.3 \
//	  -X github.com/ncobase/echoapi/version.Revision=abc123 \
//	  -X 'github.com/ncobase/echoapi/version.BuiltAt=$(date)'" ./cmd
package version
