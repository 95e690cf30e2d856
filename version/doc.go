// Package version provides build-time version information.
//
// # Version Variables
//
// These variables are set at build time using ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/cookies/version.Version=1.2.3 \
//	  -X github.com/ncobase/cookies/version.Branch=main \
//	  -X github.com/ncobase/cookies/version.Revision=abc123 \
//	  -X 'github.com/ncobase/cookies/version.BuiltAt=$(date)'" \
//	  ./cmd/cookies
//
// Unset values fall back to the module version and VCS stamp recorded by
// the go tool.
//
// # Retrieving Version Info
//
//	info := version.GetVersionInfo()
//	fmt.Println(info)          // human readable
//	out, _ := info.JSON()      // indented JSON
package version
