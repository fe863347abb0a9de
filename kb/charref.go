package kb

// CharRef is one entry of the named character-reference table: the one
// or two code points a name decodes to.
type CharRef struct {
	CodePoints []rune
}

// charRefTrieNode is one node of the deterministic trie the tokeniser
// walks for longest-match named-reference decoding (§9.1: "Implement
// named-reference matching as a deterministic trie over the
// knowledge-base table"). A node may have a CharRef even if it also has
// children, because some reference names are prefixes of others: "amp"
// is a terminal name and also the prefix of "amp;".
type charRefTrieNode struct {
	children map[byte]*charRefTrieNode
	ref      *CharRef
	// hasSemicolon records whether this terminal name includes the
	// trailing ';'. Entries without it are part of the WHATWG's
	// historical no-semicolon list and are only legal decode targets
	// when not immediately followed by '=' in an attribute value
	// (§8.3 property 12).
	hasSemicolon bool
}

// namedCharRefs is a representative subset of the full ~2,200-entry
// WHATWG named character reference table: a few of the historical
// no-semicolon legacy names plus the common entities exercised by the
// example scenarios in §8.4. Names outside this subset are not
// recognised.
var namedCharRefs = map[string][]rune{
	"amp;":     {'&'},
	"amp":      {'&'},
	"AMP;":     {'&'},
	"AMP":      {'&'},
	"lt;":      {'<'},
	"lt":       {'<'},
	"LT;":      {'<'},
	"LT":       {'<'},
	"gt;":      {'>'},
	"gt":       {'>'},
	"GT;":      {'>'},
	"GT":       {'>'},
	"quot;":    {'"'},
	"quot":     {'"'},
	"QUOT;":    {'"'},
	"QUOT":     {'"'},
	"apos;":    {'\''},
	"nbsp;":    {' '},
	"nbsp":     {' '},
	"copy;":    {'©'},
	"copy":     {'©'},
	"reg;":     {'®'},
	"reg":      {'®'},
	"deg;":     {'°'},
	"micro;":   {'µ'},
	"para;":    {'¶'},
	"middot;":  {'·'},
	"laquo;":   {'«'},
	"raquo;":   {'»'},
	"times;":   {'×'},
	"divide;":  {'÷'},
	"hellip;":  {'…'},
	"mdash;":   {'—'},
	"ndash;":   {'–'},
	"lsquo;":   {'‘'},
	"rsquo;":   {'’'},
	"ldquo;":   {'“'},
	"rdquo;":   {'”'},
	"bull;":    {'•'},
	"dagger;":  {'†'},
	"Dagger;":  {'‡'},
	"trade;":   {'™'},
	"larr;":    {'←'},
	"uarr;":    {'↑'},
	"rarr;":    {'→'},
	"darr;":    {'↓'},
	"harr;":    {'↔'},
	"spades;":  {'♠'},
	"clubs;":   {'♣'},
	"hearts;":  {'♥'},
	"diams;":   {'♦'},
	"alpha;":   {'α'},
	"beta;":    {'β'},
	"gamma;":   {'γ'},
	"delta;":   {'δ'},
	"pi;":      {'π'},
	"sigma;":   {'σ'},
	"omega;":   {'ω'},
	"infin;":   {'∞'},
	"ne;":      {'≠'},
	"le;":      {'≤'},
	"ge;":      {'≥'},
	"notin;":   {'∉'},
	"not;":     {'¬'},
	"NotEqual;": {'≠'},
}

var charRefTrieRoot *charRefTrieNode

func init() {
	charRefTrieRoot = &charRefTrieNode{children: map[byte]*charRefTrieNode{}}
	for name, cps := range namedCharRefs {
		insertCharRef(name, cps)
	}
}

func insertCharRef(name string, cps []rune) {
	node := charRefTrieRoot
	for i := 0; i < len(name); i++ {
		b := name[i]
		next, ok := node.children[b]
		if !ok {
			next = &charRefTrieNode{children: map[byte]*charRefTrieNode{}}
			node.children[b] = next
		}
		node = next
	}
	node.ref = &CharRef{CodePoints: cps}
	node.hasSemicolon = len(name) > 0 && name[len(name)-1] == ';'
}

// CharRefTrie exposes the root of the deterministic named-reference
// trie. The tokeniser walks it byte-by-byte, remembering the most
// recent node with a non-nil ref as the longest match found so far.
type CharRefTrie struct {
	root *charRefTrieNode
}

// NewCharRefTrie returns a handle onto the shared, read-only named
// character-reference trie.
func NewCharRefTrie() *CharRefTrie {
	return &CharRefTrie{root: charRefTrieRoot}
}

// numericReferenceReplacements maps the Windows-1252 C1-control range
// (0x80-0x9F) numeric character references erroneously produce to the
// code point browsers actually render, per the WHATWG's legacy
// "numeric character reference end state" table (§8.3 group 6).
var numericReferenceReplacements = map[int64]rune{
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}

// NumericReferenceReplacement reports the Windows-1252 substitution for
// a numeric character reference landing in the C1-control range, if any.
func NumericReferenceReplacement(codepoint int64) (rune, bool) {
	r, ok := numericReferenceReplacements[codepoint]
	return r, ok
}

// TrieNode is an opaque walk position in the trie.
type TrieNode struct {
	node *charRefTrieNode
}

// Root returns the trie's starting walk position.
func (t *CharRefTrie) Root() TrieNode {
	return TrieNode{node: t.root}
}

// Step advances the walk by one byte, reporting ok=false if no such
// child exists (the caller should stop matching and fall back to the
// longest match already recorded).
func (t *CharRefTrie) Step(n TrieNode, b byte) (TrieNode, bool) {
	if n.node == nil {
		return TrieNode{}, false
	}
	next, ok := n.node.children[b]
	if !ok {
		return TrieNode{}, false
	}
	return TrieNode{node: next}, true
}

// Ref returns the character reference terminating at this walk
// position, if any, and whether its canonical name included a trailing
// semicolon.
func (n TrieNode) Ref() (CharRef, bool, bool) {
	if n.node == nil || n.node.ref == nil {
		return CharRef{}, false, false
	}
	return *n.node.ref, true, n.node.hasSemicolon
}
