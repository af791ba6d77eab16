// Package pagination converts (total, page, limit) into offsets and page
// metadata for admin list views.
//
// It is a pure calculator: no stored state, no clock, no I/O. Out-of-range
// input is normalized rather than rejected — a negative page becomes the
// first page, a non-positive limit falls back to the default — so handlers
// can feed query parameters straight in:
//
//	p := pagination.New(total, page, limit)
//	rows, err := repo.ListRetailers(ctx, p.Limit, p.Offset)
//
// Window returns the bounded page-number strip ("« 3 4 [5] 6 7 »") that
// admin templates render for navigation.
package pagination
