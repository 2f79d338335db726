// =============================================================================
// Label IDoc Converter - Field Vocabulary
// =============================================================================
//
// This file is the single point of truth for the spreadsheet columns the
// converter understands. Each Definition ties together:
//   - the characteristic name written into the IDoc
//   - the header spellings accepted for it (synonyms)
//   - how the cell is interpreted (Kind)
//   - the capacity of the value
//   - for flags, the fixed graphic printed when the flag is set
//
// The order of the vocabulary IS the emission order of the characteristic
// segments. Do not sort it.
//
// =============================================================================

package label

import "fmt"

// Field is a characteristic name, e.g. "CAUTION" or "LOGO1".
type Field string

// Fields with dedicated handling outside the characteristic loop.
const (
	FieldLabel    Field = "LABEL"
	FieldMaterial Field = "MATERIAL"
	FieldTemplate Field = "TEMPLATENUMBER"
	FieldTDLine   Field = "TDLINE"
	FieldRevision Field = "REVISION"
	FieldBarcode  Field = "BARCODETEXT"
)

// Kind describes how a cell is interpreted and emitted.
type Kind int

const (
	// KindIdentity fields identify the label and are carried by the
	// material and label segments, not by characteristic segments.
	KindIdentity Kind = iota

	// KindBlock is the free-text block, emitted as text segments.
	KindBlock

	// KindText is free text emitted with its value repeated in the
	// payload region.
	KindText

	// KindQuoted is KindText whose cell may be spreadsheet-quoted.
	KindQuoted

	// KindBarcode is the GTIN, validated at emission time.
	KindBarcode

	// KindFlag is a Y/N attribute with a fixed graphic.
	KindFlag

	// KindSymbol is a symbolic value resolved to a graphic through the
	// characteristic lookup table.
	KindSymbol
)

var kindNames = map[Kind]string{
	KindIdentity: "identity",
	KindBlock:    "block",
	KindText:     "text",
	KindQuoted:   "quoted",
	KindBarcode:  "barcode",
	KindFlag:     "flag",
	KindSymbol:   "symbol",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// GraphicBearing reports whether segments of this kind carry a graphic path.
func (k Kind) GraphicBearing() bool {
	return k == KindFlag || k == KindSymbol
}

// Quoted reports whether cells of this kind go through quote normalization.
func (k Kind) Quoted() bool {
	return k == KindBlock || k == KindQuoted || k == KindBarcode
}

// Definition describes one vocabulary entry.
type Definition struct {
	// Field is the characteristic name written into the IDoc.
	Field Field

	// Headers lists the accepted header spellings, canonical first.
	Headers []string

	// Kind selects parsing and emission rules.
	Kind Kind

	// Capacity is the maximum length in characters. Zero means unbounded.
	Capacity int

	// Asset is the graphic printed for an affirmative flag.
	Asset string

	// Extended marks the secondary, non-standard field set.
	Extended bool
}

// Validated reports whether the value is checked when the segment is
// written. Such values are kept whole so an overlong cell fails validation
// instead of being shortened into a valid-looking one.
func (d Definition) Validated() bool {
	return d.Kind == KindBarcode || d.Field == FieldRevision
}

// BlankAsset is printed for a flag that is explicitly not set.
const BlankAsset = "blank-01"

// =============================================================================
// VOCABULARY
// =============================================================================

func identity(f Field, capacity int, headers ...string) Definition {
	return Definition{Field: f, Headers: append([]string{string(f)}, headers...), Kind: KindIdentity, Capacity: capacity}
}

func text(f Field, kind Kind, capacity int, headers ...string) Definition {
	return Definition{Field: f, Headers: append([]string{string(f)}, headers...), Kind: kind, Capacity: capacity}
}

func flag(f Field, asset string, headers ...string) Definition {
	return Definition{Field: f, Headers: append([]string{string(f)}, headers...), Kind: KindFlag, Capacity: 20, Asset: asset}
}

func symbol(f Field, headers ...string) Definition {
	return Definition{Field: f, Headers: append([]string{string(f)}, headers...), Kind: KindSymbol, Capacity: 40}
}

func extended(d Definition) Definition {
	d.Extended = true
	return d
}

var vocabulary = []Definition{
	identity(FieldLabel, 18),
	identity(FieldMaterial, 18),
	identity(FieldTemplate, 7, "TEMPLATE"),
	{Field: FieldTDLine, Headers: []string{string(FieldTDLine)}, Kind: KindBlock},

	text(FieldRevision, KindText, 3),
	text("SIZE", KindQuoted, 20),
	text("LEVEL", KindText, 10),
	text("QUANTITY", KindText, 8),
	text(FieldBarcode, KindBarcode, 14, "GTIN"),
	text("LTNUMBER", KindText, 9, "IPN"),
	text("DESCRIPTION", KindQuoted, 40, "MATERIALDESC"),
	extended(text("BOMLEVEL", KindText, 4)),
	extended(text("VERSION", KindText, 20)),

	flag("CAUTION", "Caution"),
	flag("CONSULTIFU", "Consult IFU"),
	flag("DONOTUSEDAM", "Do Not Use If Damaged", "DONOTUSEDAMAGED"),
	flag("ECREP", "EC Rep"),
	flag("EXPDATE", "Expiration Date"),
	flag("LATEXFREE", "Latex Free"),
	flag("LOTGRAPHIC", "Lot"),
	flag("MANINBOX", "Manual In Box"),
	flag("MANUFACTURER", "Manufacturer"),
	flag("MFGDATE", "Manufacture Date"),
	flag("NONSTERILE", "Non-Sterile"),
	flag("NORESTERILE", "Do Not Resterilize", "NORESTERILIZE"),
	flag("PHTBBP", "PHT BBP"),
	flag("PHTDEHP", "PHT DEHP"),
	flag("PHTDINP", "PHT DINP"),
	flag("PVCFREE", "PVC Free"),
	flag("REF", "REF"),
	flag("REFNUMBER", "REF"),
	flag("RXONLY", "RX Only"),
	flag("SINGLEPATIENTUSE", "Single Patient Use"),
	flag("SINGLEUSE", "Single Use", "SINGLEUSEONLY"),
	flag("TFXLOGO", "TeleflexMedical"),
	extended(flag("ELECTROSURIFU", "Electrosurgical IFU")),
	extended(flag("KEEPDRY", "Keep Dry")),
	extended(flag("KEEPAWAYHEAT", "Keep Away From Heat")),
	extended(flag("LATEX", "Contains Latex")),
	extended(flag("REUSABLE", "Reusable")),
	extended(flag("SERIALNUMBER", "Serial Number")),
	extended(flag("SIZELOGO", "Size")),

	symbol("ADDRESS"),
	symbol("CAUTIONSTATE", "CAUTIONSTATEMENT"),
	symbol("CEMARK", "CE0120"),
	symbol("COOSTATE"),
	symbol("ECREPADDRESS"),
	symbol("FLGRAPHIC"),
	symbol("LABELGRAPH1"),
	symbol("LABELGRAPH2"),
	symbol("LATEXSTATE", "LATEXSTATEMENT"),
	symbol("LOGO1"),
	symbol("LOGO2"),
	symbol("LOGO3"),
	symbol("LOGO4"),
	symbol("LOGO5"),
	symbol("PATENTSTA", "PATENTSTATEMENT"),
	symbol("STERILITYSTATEMENT"),
	symbol("STERILITYTYPE"),
	extended(symbol("DISTBY")),
	extended(symbol("INSERTGRAPHIC")),
	extended(symbol("TEMPERATURERANGE")),
}

// byHeader maps every accepted header spelling to its vocabulary index.
var byHeader = map[string]int{}

// byField maps every characteristic name to its vocabulary index.
var byField = map[Field]int{}

func init() {
	for i, def := range vocabulary {
		if _, dup := byField[def.Field]; dup {
			panic(fmt.Sprintf("label: duplicate field %s in vocabulary", def.Field))
		}
		byField[def.Field] = i
		for _, h := range def.Headers {
			if _, dup := byHeader[h]; dup {
				panic(fmt.Sprintf("label: header %s accepted by two fields", h))
			}
			byHeader[h] = i
		}
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Vocabulary returns the definitions in emission order.
func Vocabulary() []Definition {
	out := make([]Definition, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// ForHeader returns the definition accepting the given header spelling.
// Matching is exact and case-sensitive.
func ForHeader(header string) (Definition, bool) {
	i, ok := byHeader[header]
	if !ok {
		return Definition{}, false
	}
	return vocabulary[i], true
}

// ForField returns the definition of a characteristic.
func ForField(f Field) (Definition, bool) {
	i, ok := byField[f]
	if !ok {
		return Definition{}, false
	}
	return vocabulary[i], true
}

// HeaderNames returns the canonical header of every definition, in emission
// order. Extended definitions are included only when withExtended is set.
func HeaderNames(withExtended bool) []string {
	names := make([]string, 0, len(vocabulary))
	for _, def := range vocabulary {
		if def.Extended && !withExtended {
			continue
		}
		names = append(names, def.Headers[0])
	}
	return names
}
