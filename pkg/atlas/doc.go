// Package atlas provides types, interfaces, and helpers for working with the
// MongoDB Atlas administrative REST API.
//
// # Overview
//
// The atlas package defines the domain types (Cluster, AccessListEntry,
// DatabaseUser, Project, Alert) and the interfaces for resource-oriented
// clients (ClustersClient, AlertsClient, ...). A concrete implementation of
// these clients is provided by the atlasclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// atlasclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/atlasops-io/atlas-client/pkg/atlas"
//	  "github.com/atlasops-io/atlas-client/pkg/atlasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := atlasclient.New(&atlas.Config{
//	    PublicKey:  "pub",
//	    PrivateKey: "priv",
//	    GroupID:    "5a0a1e7e0f2912c554080adc",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch the first page of clusters
//	  page, err := cli.Clusters().List(ctx, atlas.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Pagination
//
// Every list endpoint returns a Page envelope carrying totalCount and
// results. The package also provides a lazy pull-based iterator spanning
// page boundaries:
//
//	it, err := cli.Clusters().Iterate(ctx, atlas.NewListOptions())
//	if err != nil { /* handle error */ }
//	for it.HasNext() {
//	  cluster, err := it.Next()
//	  if err != nil { break }
//	  _ = cluster
//	}
//
// The iterator fetches one page at a time, exactly when the current page is
// exhausted. A traversal is not restartable; construct a new iterator to
// walk the collection again.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common Atlas
// error cases. Pre-flight validation failures use PaginationLimitsError and
// ConfirmationRequiredError; any failure during a paginated traversal is
// collapsed into a single PaginationError kind.
package atlas
