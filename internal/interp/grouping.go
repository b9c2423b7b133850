package interp

import "github.com/jemacalalad/lolcode/internal/errors"

// Group implements the grouping algorithm of spec.md §4.3: given operand
// fragments already split on the AN separator, it walks the fragment list
// left to right, re-merging fragments that belong to the same nested
// operand (a nested SUM OF/BOTH OF/etc. whose own operands trail it as
// separate AN-fragments) until every slot holds exactly one self-contained
// operand. Adapted directly from the reference implementation's
// groupingalgo, including its two-pass "needs" counter for deeply nested
// expressions.
func Group(fragments []string, op Op) ([]string, *errors.Diagnostic) {
	datasplit := append([]string(nil), fragments...)
	index := 0
	needs := 0

	for {
		if index >= len(datasplit) {
			if needs != 0 {
				return nil, errors.New(errors.MissingOperand, "")
			}
			break
		}
		teststring := datasplit[index]
		if teststring == "" {
			return nil, errors.New(errors.MissingArg, "")
		}

		switch {
		case (op == OpAll || op == OpAny) && boolXSpecRe.MatchString(teststring):
			return nil, errors.New(errors.BoolRecursive, "")

		case boolSpecRe.MatchString(teststring):
			if index+1 >= len(datasplit) {
				return nil, errors.New(errors.NoMKAY, "")
			}
			merged := datasplit[index] + " AN " + datasplit[index+1]
			next := datasplit[index+1]
			datasplit[index] = merged
			datasplit = append(datasplit[:index+1], datasplit[index+2:]...)
			if mkayRe.MatchString(next) {
				index++
			}

		case expressionRe.MatchString(teststring) && !notRe.MatchString(teststring):
			for expressionRe.MatchString(teststring) {
				parts := expressionRe.Split(teststring, 2)
				teststring = parts[len(parts)-1]
				needs += 2
				if varNameRe.MatchString(teststring) || yarnPrefixRe.MatchString(teststring) ||
					numbrPrefixRe.MatchString(teststring) || troofPrefixRe.MatchString(teststring) {
					needs--
					index++
					break
				}
			}

		case (varNameRe.MatchString(teststring) || yarnRe.MatchString(teststring) ||
			numbrRe.MatchString(teststring) || troofRe.MatchString(teststring)) && needs != 0:
			needs--
			datasplit[index-1] = datasplit[index-1] + " AN " + datasplit[index]
			datasplit = append(datasplit[:index], datasplit[index+1:]...)
			if needs != 0 {
				needs--
				if needs == 0 {
					index--
					datasplit[index-1] = datasplit[index-1] + " AN " + datasplit[index]
					datasplit = append(datasplit[:index], datasplit[index+1:]...)
				}
			}

		default:
			index++
		}
	}

	switch {
	case op == OpNot && len(datasplit) > 1:
		// The reference implementation checks this arity rule but has no
		// dedicated error code for it; Error 17 (too many operands) is the
		// closest fit and is used here instead of the original's dead path.
		return nil, errors.New(errors.MaxTwoArgs, "")
	case op != OpNot && len(datasplit) < 2:
		return nil, errors.New(errors.MinTwoArgs, "")
	case op != OpAll && op != OpAny && len(datasplit) > 2:
		return nil, errors.New(errors.MaxTwoArgs, "")
	}
	return datasplit, nil
}
