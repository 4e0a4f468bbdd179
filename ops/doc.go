// Package ops defines the calculator's buttons: a closed family of
// operations over int64 values, each with a display name and an Apply
// contract that rejects presses which would not change the value.
//
// What:
//
//   - Operation: sealed interface (Name, Kind, Apply); only this package
//     provides implementations.
//   - MutableParameter: capability of MultiplyBy, DivideBy, SumWith and
//     AddDigits; their parameter can be shifted by ModifyButtons and their
//     Name is recomputed from the current parameter on every call.
//   - Store / Retrieve: memory register actions; the search engine feeds
//     them the node's Register through Capture and Recall.
//   - ModifyButtons: meta-operation; Rewrite returns a new catalog with
//     every MutableParameter cloned and shifted, leaving the input intact.
//   - Warp: automatic post-move transform, never part of a catalog.
//   - Parse / ParseAll / ParseWarp: build operations from short button
//     specs ("x3", "+4", "[+]2", "12=>34", "store", "2:0") or from their
//     display names.
//
// Rejections:
//
//	Apply, Capture and Recall fail with one of the recoverable sentinels
//	listed by IsRejection. The search engine treats such a failure as "no
//	child" and never propagates it. Any other error is a configuration
//	problem.
package ops
