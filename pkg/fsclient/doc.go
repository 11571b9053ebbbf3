// Package fsclient provides the primary entry point for constructing a
// Formstack V2 API client that implements the formstack.Client interface.
//
// It layers configuration, HTTP transport, and bearer-token authentication on
// top of the resource interfaces and types defined in the formstack package.
// Most applications should import fsclient to build a client, then use the
// returned formstack.Client to access resource-specific clients: Forms(),
// Fields(), and Submissions().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/justin-frenzel/formstack-go/pkg/formstack"
//	  "github.com/justin-frenzel/formstack-go/pkg/fsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an access token against the public API.
//	  cli, err := fsclient.NewWithToken("eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = fsclient.New(&formstack.Config{
//	    AccessToken: "eyJhbGciOi...",
//	    Debug:       true,
//	    Logger:      myLogger,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the formstack.Client interface
//	  forms, err := cli.Forms().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = forms
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithTokenSource that wrap New with the appropriate configuration.
package fsclient
