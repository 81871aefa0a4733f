/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lovins implements the Lovins (1968) stemmer: removal of the longest
// ending whose context condition holds, followed by recoding of the stem end.
package lovins

import (
	"sort"
	"strings"

	"github.com/blevesearch/snowballstem"
)

type condition func(stem string) bool

func has(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// uXe reports whether the stem ends in u, any letter, e.
func uXe(s string) bool {
	n := len(s)
	return n >= 3 && s[n-1] == 'e' && s[n-3] == 'u'
}

var conditions = map[string]condition{
	"A": func(s string) bool { return true },
	"B": func(s string) bool { return len(s) >= 3 },
	"C": func(s string) bool { return len(s) >= 4 },
	"D": func(s string) bool { return len(s) >= 5 },
	"E": func(s string) bool { return !has(s, "e") },
	"F": func(s string) bool { return len(s) >= 3 && !has(s, "e") },
	"G": func(s string) bool { return len(s) >= 3 && has(s, "f") },
	"H": func(s string) bool { return has(s, "t", "ll") },
	"I": func(s string) bool { return !has(s, "o", "e") },
	"J": func(s string) bool { return !has(s, "a", "e") },
	"K": func(s string) bool { return len(s) >= 3 && (has(s, "l", "i") || uXe(s)) },
	"L": func(s string) bool { return !has(s, "u", "x") && (!has(s, "s") || has(s, "os")) },
	"M": func(s string) bool { return !has(s, "a", "c", "e", "m") },
	"N": func(s string) bool {
		if len(s) < 3 {
			return false
		}
		return s[len(s)-3] != 's' || len(s) >= 4
	},
	"O":  func(s string) bool { return has(s, "l", "i") },
	"P":  func(s string) bool { return !has(s, "c") },
	"Q":  func(s string) bool { return len(s) >= 3 && !has(s, "l", "n") },
	"R":  func(s string) bool { return has(s, "n", "r") },
	"S":  func(s string) bool { return has(s, "dr") || (has(s, "t") && !has(s, "tt")) },
	"T":  func(s string) bool { return has(s, "s") || (has(s, "t") && !has(s, "ot")) },
	"U":  func(s string) bool { return has(s, "l", "m", "n", "r") },
	"V":  func(s string) bool { return has(s, "c") },
	"W":  func(s string) bool { return !has(s, "s", "u") },
	"X":  func(s string) bool { return has(s, "l", "i") || uXe(s) },
	"Y":  func(s string) bool { return has(s, "in") },
	"Z":  func(s string) bool { return !has(s, "f") },
	"AA": func(s string) bool { return has(s, "d", "f", "ph", "th", "l", "er", "or", "es", "t") },
	"BB": func(s string) bool { return len(s) >= 3 && !has(s, "met", "ryst") },
	"CC": func(s string) bool { return has(s, "l") },
}

// endingTable lists every ending with the condition it is removed under.
const endingTable = `
alistically:B arizability:A izationally:B
antialness:A arisations:A arizations:A entialness:A
allically:C antaneous:A antiality:A arisation:A arization:A ationally:B
ativeness:A eableness:E entations:A entiality:A entialize:A entiation:A
ionalness:A istically:A itousness:A izability:A izational:A
ableness:A arizable:A entation:A entially:A eousness:A ibleness:A
icalness:A ionalism:A ionality:A ionalize:A iousness:A izations:A lessness:A
ability:A aically:A alistic:B alities:A ariness:E aristic:A arizing:A
ateness:A atingly:A ational:B atively:A ativism:A elihood:E encible:A
entally:A entials:A entiate:A entness:A fulness:A ibility:A icalism:A
icalist:A icality:A icalize:A ication:G icianry:A ination:A ingness:A
ionally:A isation:A ishness:A istical:A iteness:A iveness:A ivistic:A
ivities:A ization:F izement:A oidally:A ousness:A
aceous:A acious:B action:G alness:A ancial:A ancies:A ancing:B ariser:A
arized:A arizer:A atable:A ations:B atives:A eature:Z efully:A encies:A
encing:A ential:A enting:C entist:A eously:A ialist:A iality:A ialize:A
ically:A icance:A icians:A icists:A ifully:A ionals:A ionate:D ioning:A
ionist:A iously:A istics:A izable:E lessly:A nesses:A oidism:A
acies:A acity:A aging:B aical:A alist:A alism:B ality:A alize:A allic:BB
anced:B ances:B antic:C arial:A aries:A arily:A arity:B arize:A aroid:A
ately:A ating:I ation:B ative:A ators:A atory:A ature:E early:Y ehood:A
eless:A elity:A ement:A enced:A ences:A eness:E ening:E ental:A ented:C
ently:A fully:A ially:A icant:A ician:A icide:A icism:A icist:A icity:A
idine:I iedly:A ihood:A inate:A iness:A ingly:B inism:J inity:CC ional:A
ioned:A ished:A istic:A ities:A itous:A ively:A ivity:A izers:F izing:F
oidal:A oides:A otide:A ously:A
able:A ably:A ages:B ally:B ance:B ancy:B ants:B aric:A arly:K ated:I
ates:A atic:B ator:A ealy:Y edly:E eful:A eity:A ence:A ency:A ened:E
enly:E eous:A hood:A ials:A ians:A ible:A ibly:A ical:A ides:L iers:A
iful:A ines:M ings:N ions:B ious:A isms:B ists:A itic:H ized:F izer:F
less:A lily:A ness:A ogen:A ward:A wise:A ying:B yish:A
acy:A age:B aic:A als:BB ant:B ars:O ary:F ata:A ate:A eal:Y ear:Y ely:E
ene:E ent:C ery:E ese:A ful:A ial:A ian:A ics:A ide:L ied:A ier:A ies:P
ily:A ine:M ing:N ion:Q ish:C ism:B ist:A ite:AA ity:A ium:A ive:A ize:F
oid:A one:R ous:A
ae:A al:BB ar:X as:B ed:E en:F es:E ia:A ic:A is:A ly:B on:S or:T um:U
us:V yl:R 's:A s':A
a:A e:A i:A o:A s:W y:B
`

var (
	endings   = make(map[string]condition)
	maxEnding int
)

type respelling struct {
	suffix, repl string
	// not lists letters that must not precede the suffix.
	not string
}

// respellings are tried longest suffix first; only the longest match applies.
var respellings = []respelling{
	{"iev", "ief", ""},
	{"uct", "uc", ""},
	{"umpt", "um", ""},
	{"rpt", "rb", ""},
	{"urs", "ur", ""},
	{"istr", "ister", ""},
	{"metr", "meter", ""},
	{"olv", "olut", ""},
	{"ul", "l", "aoi"},
	{"bex", "bic", ""},
	{"dex", "dic", ""},
	{"pex", "pic", ""},
	{"tex", "tic", ""},
	{"ax", "ac", ""},
	{"ex", "ec", ""},
	{"ix", "ic", ""},
	{"lux", "luc", ""},
	{"uad", "uas", ""},
	{"vad", "vas", ""},
	{"cid", "cis", ""},
	{"lid", "lis", ""},
	{"erid", "eris", ""},
	{"pand", "pans", ""},
	{"end", "ens", "s"},
	{"ond", "ons", ""},
	{"lud", "lus", ""},
	{"rud", "rus", ""},
	{"her", "hes", "pt"},
	{"mit", "mis", ""},
	{"ent", "ens", "m"},
	{"ert", "ers", ""},
	{"et", "es", "n"},
	{"yt", "ys", ""},
	{"yz", "ys", ""},
}

func init() {
	for _, field := range strings.Fields(endingTable) {
		i := strings.LastIndexByte(field, ':')
		ending, cond := field[:i], conditions[field[i+1:]]
		if cond == nil {
			panic("lovins: unknown condition in " + field)
		}
		if _, ok := endings[ending]; ok {
			continue
		}
		endings[ending] = cond
		if len(ending) > maxEnding {
			maxEnding = len(ending)
		}
	}
	sort.SliceStable(respellings, func(i, j int) bool {
		return len(respellings[i].suffix) > len(respellings[j].suffix)
	})
}

// Stem applies the Lovins algorithm to the current word. It has the signature
// of the snowballstem language packages.
func Stem(env *snowballstem.Env) bool {
	env.SetCurrent(Word(env.Current()))
	return true
}

// Word returns the Lovins stem of w.
func Word(w string) string {
	return recode(removeEnding(w))
}

// removeEnding strips the longest ending whose condition holds, always
// leaving a stem of at least two letters.
func removeEnding(w string) string {
	n := maxEnding
	if n > len(w)-2 {
		n = len(w) - 2
	}
	for ; n > 0; n-- {
		stem := w[:len(w)-n]
		if cond, ok := endings[w[len(w)-n:]]; ok && cond(stem) {
			return stem
		}
	}
	return w
}

func recode(s string) string {
	if n := len(s); n >= 2 && s[n-1] == s[n-2] && strings.IndexByte("bdglmnprst", s[n-1]) >= 0 {
		s = s[:n-1]
	}
	for _, r := range respellings {
		if !strings.HasSuffix(s, r.suffix) {
			continue
		}
		head := s[:len(s)-len(r.suffix)]
		if head != "" && strings.IndexByte(r.not, head[len(head)-1]) >= 0 {
			return s
		}
		return head + r.repl
	}
	return s
}
