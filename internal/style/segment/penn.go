package segment

import "github.com/kamusis/quill-cli/internal/style"

// pennToUniversal maps Penn Treebank tags onto the closed universal set.
var pennToUniversal = map[string]style.POSTag{
	"NN":    style.POSNoun,
	"NNS":   style.POSNoun,
	"NNP":   style.POSPropn,
	"NNPS":  style.POSPropn,
	"PRP":   style.POSPron,
	"PRP$":  style.POSPron,
	"WP":    style.POSPron,
	"WP$":   style.POSPron,
	"EX":    style.POSPron,
	"VB":    style.POSVerb,
	"VBD":   style.POSVerb,
	"VBG":   style.POSVerb,
	"VBN":   style.POSVerb,
	"VBP":   style.POSVerb,
	"VBZ":   style.POSVerb,
	"MD":    style.POSAux,
	"JJ":    style.POSAdj,
	"JJR":   style.POSAdj,
	"JJS":   style.POSAdj,
	"RB":    style.POSAdv,
	"RBR":   style.POSAdv,
	"RBS":   style.POSAdv,
	"WRB":   style.POSAdv,
	"IN":    style.POSAdp,
	"DT":    style.POSDet,
	"PDT":   style.POSDet,
	"WDT":   style.POSDet,
	"CC":    style.POSCconj,
	"RP":    style.POSPart,
	"TO":    style.POSPart,
	"POS":   style.POSPart,
	"CD":    style.POSNum,
	"UH":    style.POSIntj,
	"SYM":   style.POSSym,
	"$":     style.POSSym,
	"#":     style.POSSym,
	".":     style.POSPunct,
	",":     style.POSPunct,
	":":     style.POSPunct,
	"(":     style.POSPunct,
	")":     style.POSPunct,
	"-LRB-": style.POSPunct,
	"-RRB-": style.POSPunct,
	"``":    style.POSPunct,
	"''":    style.POSPunct,
	"\"":    style.POSPunct,
}

// FromPenn returns the universal tag for a Penn Treebank tag. Tags outside
// the table (FW, LS, unknown model output) are bucketed into X.
func FromPenn(tag string) style.POSTag {
	if t, ok := pennToUniversal[tag]; ok {
		return t
	}
	return style.POSX
}
