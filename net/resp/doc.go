// Package resp builds the standard JSON response envelopes used by the
// application, with error metadata sourced from an ecode.Table.
//
// This package provides:
//   - Success and error envelope builders
//   - Plain HTTP error envelopes using standard reason phrases
//   - Validation failure envelopes
//   - Error envelopes resolved from a static error table
//   - Writers for net/http and gin
//
// # Response Structure
//
// Success:
//
//	{
//	  "success": true,
//	  ...data
//	}
//
// Failure:
//
//	{
//	  "success": false,
//	  "error": {
//	    "code": "ORDER_EXPIRED",
//	    "message": "Order has expired",
//	    ...data.error
//	  },
//	  ...data
//	}
//
// # Building Responses
//
//	b := resp.New(table)
//
//	r := b.Success(map[string]any{"count": 3})
//	r = b.Error("QUOTA", "Quota exceeded", nil, resp.WithStatus(http.StatusTooManyRequests))
//
//	r, err := b.HTTPError(http.StatusNotFound, nil, nil)
//	if err != nil {
//	    // errors.Is(err, ecode.ErrUnknownHTTPStatus)
//	}
//
//	r, err = b.FindError("ORDER_EXPIRED", nil, nil)
//	if err != nil {
//	    // errors.Is(err, ecode.ErrCodeNotFound)
//	}
//
//	if r := b.ValidatorError(result); r != nil {
//	    r.Abort(c)
//	    return
//	}
//
// # Writing Responses
//
//	r.Write(w)  // net/http
//	r.JSON(c)   // gin
//	r.Abort(c)  // gin, aborting the handler chain
//
// Builders are pure: the same inputs always produce structurally identical
// responses and caller maps are never modified.
package resp
