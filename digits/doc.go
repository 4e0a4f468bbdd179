// Package digits implements the decimal-digit transforms behind every
// calculator button: reversal, mirroring, circular and truncating shifts,
// digit sums, per-digit complements, concatenation, exact division and the
// warp portal.
//
// What:
//
//   - All functions work on int64 and return (int64, error).
//   - Transforms that are defined on the digit string of a number (Reverse,
//     Mirror, CircularShiftRight, CircularShiftLeft, ShiftLeft, SumDigits,
//     Inv10EachDigit) operate on |n| and reattach the sign of n to the
//     result, so Reverse(-123) == -321.
//   - Warp does not reattach a sign: it leaves short negative numbers alone
//     and refuses to fold longer ones.
//   - Replace and AddDigits operate on the raw signed decimal text, so a
//     minus sign stays where it was written.
//
// Errors:
//
//   - ErrInvalidDivision  divisor is zero or does not divide exactly.
//   - ErrIllegalShift     truncating a single-digit number.
//   - ErrDigitOverflow    mirroring a number with more than three digits.
//   - ErrOverflow         the result does not fit into int64.
//   - ErrMalformedNumber  a textual edit produced something that is not a number.
//   - ErrWarpDiverged     warp did not reach a fixed point.
//   - ErrInvalidWarp      warp indices out of range.
//
// Complexity:
//
//   - Every transform is O(d) in the number of decimal digits d (d <= 19).
//   - Warp is O(p·d) where p <= MaxWarpPasses.
package digits
