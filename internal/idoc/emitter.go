// =============================================================================
// Label IDoc Converter - Segment Emitter
// =============================================================================
//
// The emitter turns one label Record into its segments, in this order:
//
//   1. MATERIAL        (only when the material differs from the previous
//                       record's material and is not empty)
//   2. LABEL           (always; carries the template number)
//   3. TEXT            (one per chunk of the free-text block)
//   4. CHARACTERISTIC  (one per eligible field, in vocabulary order)
//
// All numbering lives in the State passed to the emitter. Two emitters with
// separate states never affect each other.
//
// =============================================================================

package idoc

import (
	"errors"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
	"github.com/ginjaninja78/label-idoc-converter/internal/validation"
)

// DefaultGraphicsPath prefixes every graphic asset.
const DefaultGraphicsPath = `T:\MEDICAL\NA\RTP\TEAM CENTER\TEMPLATES\GRAPHICS\`

// Text segment constants.
const (
	textObject   = "GRUNE  EN"
	textID       = "MATERIAL  "
	textFirst    = "*"
	textFollowOn = "/"
)

// ErrNoLookup is returned by NewEmitter without a lookup table.
var ErrNoLookup = errors.New("emitter requires a lookup table")

// Options configures an Emitter.
type Options struct {
	// GraphicsPath prefixes every graphic asset. Defaults to
	// DefaultGraphicsPath.
	GraphicsPath string

	// Extended enables emission of the extended field set.
	Extended bool

	// Lookup resolves symbolic values to graphic assets.
	Lookup *lookup.Table

	// Validator checks revisions and barcodes. Defaults to
	// validation.New(nil).
	Validator *validation.Validator
}

// Emitter produces the segments of one document.
type Emitter struct {
	opts       Options
	state      *State
	vocabulary []label.Definition
}

// NewEmitter creates an emitter writing into state.
func NewEmitter(state *State, opts Options) (*Emitter, error) {
	if opts.Lookup == nil {
		return nil, ErrNoLookup
	}
	if opts.GraphicsPath == "" {
		opts.GraphicsPath = DefaultGraphicsPath
	}
	if opts.Validator == nil {
		opts.Validator = validation.New(nil)
	}
	return &Emitter{opts: opts, state: state, vocabulary: label.Vocabulary()}, nil
}

// State returns the emitter's document state.
func (e *Emitter) State() *State {
	return e.state
}

// Emit returns the segments of one record.
//
// PARAMETERS:
//   - rec: A record built by label.Build.
//
// RETURNS:
//   - The segments in output order.
//   - Warnings for values that were skipped or emitted with a problem.
//   - A *label.RowError wrapping label.ErrMissingTemplate when the record
//     has no template number. No sequence number is consumed in that case.
func (e *Emitter) Emit(rec *label.Record) ([]Segment, types.Issues, error) {
	if rec.Template == "" {
		return nil, nil, &label.RowError{Row: rec.Row, Field: label.FieldTemplate, Err: label.ErrMissingTemplate}
	}

	st := e.state
	var segments []Segment

	if st.materialChanged(rec.Material) {
		seq := st.next()
		st.material = seq
		segments = append(segments, e.segment(TagMaterial, seq, 0, LevelMaterial,
			fit(rec.Material, materialWidth)))
	}

	seq := st.next()
	st.label = seq
	st.text = seq
	segments = append(segments, e.segment(TagLabel, seq, st.material, LevelLabel,
		fit(rec.Label, labelWidth)+fit(rec.Template, templateWidth)))

	segments = append(segments, e.text(rec)...)

	var issues types.Issues
	for _, def := range e.vocabulary {
		seg, ok, found := e.characteristic(rec, def)
		issues = append(issues, found...)
		if ok {
			segments = append(segments, seg)
		}
	}

	return segments, issues, nil
}

// text emits the free-text block of a record.
func (e *Emitter) text(rec *label.Record) []Segment {
	if rec.Text == "" || label.IsNotApplicable(rec.Text) {
		return nil
	}

	var segments []Segment
	for i, chunk := range Chunks(rec.Text) {
		marker := textFollowOn
		if i == 0 {
			marker = textFirst
		}
		payload := textObject + textID + fit(rec.Label, textNameWidth) + fit(chunk, TextWidth) + marker
		segments = append(segments, e.segment(TagText, e.state.next(), e.state.text, LevelText, payload))
	}
	return segments
}

// characteristic emits one characteristic segment if the field is eligible.
func (e *Emitter) characteristic(rec *label.Record, def label.Definition) (Segment, bool, types.Issues) {
	switch def.Kind {
	case label.KindIdentity, label.KindBlock:
		return Segment{}, false, nil
	}
	if def.Extended && !e.opts.Extended {
		return Segment{}, false, nil
	}
	if !rec.Has(def.Field) {
		return Segment{}, false, nil
	}

	value := rec.Value(def.Field)
	if value == "" || label.IsNotApplicable(value) {
		return Segment{}, false, nil
	}

	var issues types.Issues
	var region string

	switch def.Kind {
	case label.KindFlag:
		asset := label.BlankAsset
		value = "N"
		if rec.Flag(def.Field) {
			asset = def.Asset
			value = "Y"
		}
		region = e.opts.GraphicsPath + asset + lookup.AssetExt

	case label.KindSymbol:
		region = e.opts.GraphicsPath + e.opts.Lookup.Asset(value)

	case label.KindBarcode:
		ok, found := e.opts.Validator.GTIN(rec.Row, string(def.Field), value)
		issues = found
		if !ok {
			return Segment{}, false, issues
		}
		region = value

	default:
		if def.Field == label.FieldRevision {
			ok, found := e.opts.Validator.Revision(rec.Row, string(def.Field), value)
			if !ok {
				return Segment{}, false, found
			}
		}
		region = value
	}

	payload := fit(string(def.Field), nameWidth) + fit(value, valueWidth) + fit(region, assetWidth)
	return e.segment(TagCharacteristic, e.state.next(), e.state.label, LevelCharacteristic, payload), true, issues
}

func (e *Emitter) segment(tag string, seq, owner, level int, payload string) Segment {
	return Segment{
		Tag:     tag,
		Control: e.state.control,
		Seq:     seq,
		Owner:   owner,
		Level:   level,
		Payload: payload,
	}
}
