// Package ecode holds the static error table that drives error responses,
// together with the HTTP reason phrases used for plain HTTP errors.
//
// This package provides:
//   - The error table entry model (message, HTTP status, headers, extra data)
//   - An immutable, read-only Table keyed by int or string error codes
//   - YAML and JSON loaders for table files
//   - An embedded default table that can be published to disk
//   - Sentinel errors for unknown codes and unknown HTTP statuses
//
// # Table Source
//
// A table file lists error codes under an optional top-level "errors" key:
//
//	errors:
//	  ORDER_EXPIRED:
//	    message: Order has expired
//	    http:
//	      code: 410
//	      headers:
//	        x-order-state: expired
//	    data:
//	      error:
//	        retry: false
//	      status: 410
//	  1001:
//	    message: Insufficient account balance
//	    http:
//	      code: 402
//
// Missing http.code defaults to 400. Codes are normalized to their string
// form, so 1001 and "1001" name the same entry.
//
// # Loading
//
//	table, err := ecode.LoadFile("errors.yaml")
//	if err != nil {
//	    return err
//	}
//
//	entry, err := table.Lookup("ORDER_EXPIRED")
//	if errors.Is(err, ecode.ErrCodeNotFound) {
//	    // not configured
//	}
//
// # HTTP Reason Phrases
//
//	text, err := ecode.StatusText(404)
//	// text == "Not Found"
//
//	_, err = ecode.StatusText(999)
//	// errors.Is(err, ecode.ErrUnknownHTTPStatus)
//
// # Usage with Response Package
//
//	import (
//	    "github.com/ncobase/echoapi/ecode"
//	    "github.com/ncobase/echoapi/net/resp"
//	)
//
//	b := resp.New(table)
//	r, err := b.FindError("ORDER_EXPIRED", nil, nil)
package ecode
