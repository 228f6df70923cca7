// Package collector is the dispatch engine: it takes raw command output for a
// device, picks a template and reconciler from the rule index, parses the text
// and hands the records to the reconciler.
//
// Every outcome, including a malformed request or an unknown command, is
// returned as a reconcile.Result; the HTTP layer always answers 200 with the
// {"result","detail"} envelope.
package collector
