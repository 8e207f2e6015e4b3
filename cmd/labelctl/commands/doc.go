// Package commands defines the labelctl operator CLI.
//
// Commands
//
//   - replay   Apply an action log to empty order states and print the result
//
// # Action log
//
// The log is JSON Lines. Each line holds one dispatched action and the order
// it was dispatched for:
//
//	{"orderId":"5b0c6f5e-...","action":{"type":"setIsFetching","isFetching":true}}
//
// Blank lines are skipped. The first line that cannot be decoded stops the
// replay with its line number.
package commands
