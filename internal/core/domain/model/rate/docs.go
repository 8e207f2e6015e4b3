// Package rate tracks carrier rate quotes fetched for an order's packages and
// the service the user picked for each package.
//
// Values holds the selection per package ID ("" when nothing is picked) and
// Available holds the quotes last returned by the carrier service. Whenever
// the package set changes shape both are reset through Reset, since quotes
// priced for the old packages no longer apply.
package rate
