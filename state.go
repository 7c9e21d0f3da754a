package solmeta

// parseFlag marks one recognized element of a metadata.xml document.
type parseFlag uint16

const (
	flagRoot parseFlag = 1 << iota
	flagPackage
	flagHistory
	flagSource
	flagName
	flagComponent
	flagPackager
	flagEmail
)

// The two accepted root element spellings, treated as equivalent.
const (
	rootTagPisi = "PISI"
	rootTagSol  = "SOL"
)

// metaMapping maps accepted element names to their flag, in match order.
var metaMapping = [...]struct {
	key  string
	flag parseFlag
}{
	{"Package", flagPackage},
	{"History", flagHistory},
	{"Source", flagSource},
	{"Name", flagName},
	{"PartOf", flagComponent},
	{"Packager", flagPackager},
	{"Email", flagEmail},
}

// parseState is the set of elements currently considered open.
//
// State is toggled on both the open and the close of a tag instead of being
// pushed and popped. That is only equivalent to a stack because the metadata
// schema is closed: no recognized name repeats at different depths and no
// element nests inside itself. Do not generalize this to a real stack, it
// would change matching behavior.
type parseState struct {
	flags parseFlag
}

func (s *parseState) inRoot() bool { return s.flags&flagRoot != 0 }

// flip toggles the flag for name on both open and close events. Root tags
// consume the event; anything outside the root is ignored entirely.
func (s *parseState) flip(name []byte) {
	switch string(name) {
	case rootTagPisi, rootTagSol:
		s.flags ^= flagRoot
		return
	}
	if !s.inRoot() {
		return
	}
	for i := range metaMapping {
		if string(name) == metaMapping[i].key {
			s.flags ^= metaMapping[i].flag
			return
		}
	}
}
