// Package formstack provides types, interfaces, and helpers for working with
// the Formstack V2 API.
//
// # Overview
//
// The formstack package defines the domain types (e.g., Form, Field,
// Submission) and the interfaces for resource-oriented clients (FormsClient,
// FieldsClient, SubmissionsClient). A concrete implementation of these
// clients is provided by the fsclient package, which wires configuration,
// transport, and authentication. Most consumers should import fsclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := fsclient.NewWithToken("your-oauth2-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of forms
//	  forms, err := cli.Forms().List(ctx, &formstack.ListFormsOptions{
//	    PerPage: formstack.IntPtr(50),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = forms
//	}
//
// # Parameters
//
// Request parameters are expressed with Params, an insertion-ordered mapping
// of scalar and one-level nested values. Params.Encode reproduces the exact
// wire encoding the Formstack API expects: segments are built unescaped,
// joined with "&", and then the whole string is percent-escaped in a single
// pass. Resource clients build Params internally; the type is exported for
// callers that need to hit endpoints not covered by the typed surface.
//
// # Errors
//
// API failures are represented by APIError, which covers both non-2xx HTTP
// statuses and 2xx responses whose payload carries a "status":"error" marker.
// Argument problems detected before any network I/O are returned as
// ValidationError. Helpers such as IsAPIError, IsValidation, IsNotFound, and
// IsUnauthorized make it easy to branch on common cases.
//
// # Interceptors
//
// The package includes request/response interceptor building blocks (for
// logging, header injection, and metrics). The fsclient package composes
// these pieces for a sensible default client; applications with advanced
// needs can register their own hooks via Config.
//
// # Resources
//
// Resource clients follow a consistent pattern across Formstack resources:
// typed options structs validated before I/O, context-aware methods, and
// typed results. See FormsClient, FieldsClient, and SubmissionsClient for
// the full surface area.
package formstack
