package interp

import "regexp"

// Central regular-expression catalog, per spec.md §9's
// design note on regex reuse. Each keyword-prefix pattern is anchored at
// the start of the fragment it is tested against but intentionally NOT
// anchored at the end, so that it can detect "this fragment begins with
// operator X" while leaving the operand tail for further splitting.
//
// A pattern suffixed "Anchored" matches the ENTIRE token (used to build a
// literal Value); its un-suffixed counterpart only needs to match a
// substring (used for dispatch/classification). Conflating the two is
// exactly the mistake spec.md §9 calls out as producing false-negative
// Error 44s, so the two are always compiled and named separately.
var (
	varNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

	numbrAnchoredRe  = regexp.MustCompile(`^-?[0-9]+$`)
	numbarAnchoredRe = regexp.MustCompile(`^-?[0-9]*\.[0-9]+$`)
	numbrRe          = regexp.MustCompile(`-?[0-9]+`)
	numbarRe         = regexp.MustCompile(`-?[0-9]*\.[0-9]+`)
	yarnRe           = regexp.MustCompile(`"[^"]*"\s*`)
	yarnPrefixRe     = regexp.MustCompile(`^"[^"]*"\s*`)
	numbrPrefixRe    = regexp.MustCompile(`^-?[0-9]+`)
	troofAnchoredRe  = regexp.MustCompile(`^(WIN|FAIL)$`)
	troofRe          = regexp.MustCompile(`WIN|FAIL`)
	troofPrefixRe    = regexp.MustCompile(`^(WIN|FAIL)`)
	caseTroofRe      = regexp.MustCompile(`^(NOT )?(WIN|FAIL)$`)

	haiRe      = regexp.MustCompile(`^HAI\s*`)
	kthxbyeRe  = regexp.MustCompile(`^\s*KTHXBYE\s*$`)
	blankRe    = regexp.MustCompile(`^\s*$`)
	btwRe      = regexp.MustCompile(`\sBTW\s`)
	obtwRe     = regexp.MustCompile(`^\s*OBTW\s*`)
	tldrRe     = regexp.MustCompile(`\s*TLDR\s*$`)
	ihasaRe    = regexp.MustCompile(`^\s*I HAS A\s`)
	itzRe      = regexp.MustCompile(`\sITZ\s`)
	visibleRe  = regexp.MustCompile(`^\s*VISIBLE\s`)
	gimmehRe   = regexp.MustCompile(`^\s*GIMMEH\s`)
	varAssignRe = regexp.MustCompile(`\s+R\s+`)

	orlyRe    = regexp.MustCompile(`^\s*O RLY\?\s*$`)
	yarlyRe   = regexp.MustCompile(`^\s*YA RLY\s*$`)
	nowaiRe   = regexp.MustCompile(`^\s*NO WAI\s*$`)
	wtfRe     = regexp.MustCompile(`^\s*WTF\?\s*$`)
	omgRe     = regexp.MustCompile(`^\s*OMG\s+`)
	omgwtfRe  = regexp.MustCompile(`^\s*OMGWTF\s*$`)
	gtfoRe    = regexp.MustCompile(`^\s*GTFO\s*$`)
	oicRe     = regexp.MustCompile(`^\s*OIC\s*$`)

	addRe   = regexp.MustCompile(`^\s*SUM OF\s`)
	subRe   = regexp.MustCompile(`^\s*DIFF OF\s`)
	mulRe   = regexp.MustCompile(`^\s*PRODUKT OF\s`)
	divRe   = regexp.MustCompile(`^\s*QUOSHUNT OF\s`)
	modRe   = regexp.MustCompile(`^\s*MOD OF\s`)
	morRe   = regexp.MustCompile(`^\s*BIGGR OF\s`)
	lesRe   = regexp.MustCompile(`^\s*SMALLR OF\s`)
	equRe   = regexp.MustCompile(`^\s*BOTH SAEM\s`)
	neqRe   = regexp.MustCompile(`^\s*DIFFRINT\s`)
	notRe   = regexp.MustCompile(`^\s*NOT\s`)
	xorRe   = regexp.MustCompile(`^\s*WON OF\s`)
	anyRe   = regexp.MustCompile(`^\s*ANY OF\s`)
	allRe   = regexp.MustCompile(`^\s*ALL OF\s`)
	andRe   = regexp.MustCompile(`^\s*BOTH OF\s`)
	orRe    = regexp.MustCompile(`^\s*EITHER OF\s`)
	mkayRe  = regexp.MustCompile(`\sMKAY\s*$`)
	smooshRe = regexp.MustCompile(`(^\s*|\s)SMOOSH\s`)
	anSepRe  = regexp.MustCompile(`\sAN\s`)

	mathRe     = regexp.MustCompile(`^(` + addBody + `|` + subBody + `|` + mulBody + `|` + divBody + `|` + modBody + `|` + morBody + `|` + lesBody + `)`)
	compRe     = regexp.MustCompile(`^(` + equBody + `|` + neqBody + `)`)
	boolRe     = regexp.MustCompile(`^(` + notBody + `|` + andBody + `|` + orBody + `|` + xorBody + `|` + allBody + `|` + anyBody + `)`)
	boolSpecRe = regexp.MustCompile(`^(` + allBody + `|` + anyBody + `)`)
	boolXSpecRe = regexp.MustCompile(allBody + `|` + anyBody)
	expressionRe = regexp.MustCompile(`^(` + mathBody + `|` + compBody + `|` + boolBody + `|` + smooshBody + `)`)
)

// The *Body constants mirror the *Re patterns above but without the
// leading `^` anchor, so they can be embedded inside the combined
// mathRe/boolRe/expressionRe alternations exactly as the reference
// implementation slices its own pattern strings for reuse.
const (
	addBody    = `\s*SUM OF\s`
	subBody    = `\s*DIFF OF\s`
	mulBody    = `\s*PRODUKT OF\s`
	divBody    = `\s*QUOSHUNT OF\s`
	modBody    = `\s*MOD OF\s`
	morBody    = `\s*BIGGR OF\s`
	lesBody    = `\s*SMALLR OF\s`
	equBody    = `\s*BOTH SAEM\s`
	neqBody    = `\s*DIFFRINT\s`
	notBody    = `\s*NOT\s`
	andBody    = `\s*BOTH OF\s`
	orBody     = `\s*EITHER OF\s`
	xorBody    = `\s*WON OF\s`
	allBody    = `\s*ALL OF\s`
	anyBody    = `\s*ANY OF\s`
	mathBody   = addBody + `|` + subBody + `|` + mulBody + `|` + divBody + `|` + modBody + `|` + morBody + `|` + lesBody
	compBody   = equBody + `|` + neqBody
	boolBody   = notBody + `|` + andBody + `|` + orBody + `|` + xorBody + `|` + allBody + `|` + anyBody
	smooshBody = `(^\s*|\s)SMOOSH\s`
)
