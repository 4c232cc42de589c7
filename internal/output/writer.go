package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

const (
	ManifestFile   = "manifest.json"
	archetypesDir  = "archetypes"
	attribsDir     = "attribs"
	fxDir          = "fx"
	categoriesFile = "categories.jsonl"
	powerSetsFile  = "power_sets.jsonl"
	powersFile     = "powers.jsonl"
	fxFile         = "fx.jsonl"
)

// Options controls where and how documents are written.
type Options struct {
	OutputPath  string
	Style       string
	Format      string
	Issue       string
	Source      string
	BaseJSONURL string
	ExtractDate time.Time
	// RunID identifies the run in the manifest. Generated when empty.
	RunID string
	// Assets rewrites icon names into asset URLs when set.
	Assets *config.AssetsConfig
}

// ErrOutsideOutput marks a document path that would resolve outside the
// output directory.
var ErrOutsideOutput = errors.New("path is outside the output directory")

// Manifest lists what one run produced. It is written last and is not part
// of its own file list.
type Manifest struct {
	Header
	RunID  string        `json:"run_id"`
	Format string        `json:"format"`
	Counts powers.Counts `json:"counts"`
	Files  []string      `json:"files"`
}

// Result reports a finished write.
type Result struct {
	Manifest Manifest
	// Hashes maps every written path, manifest included, to its content hash.
	Hashes    map[string]string
	Rewritten int
	Unchanged int
}

// Writer serializes a dictionary into the output directory.
type Writer struct {
	opts    Options
	attribs *powers.AttribNames
	logger  *zap.Logger
	header  Header
	result  *Result

	// fxLinks maps a lower cased FX source file to its link once written.
	fxLinks   map[string]string
	fxDirs    map[string]bool
	fxRecords []FXDoc
}

func NewWriter(opts Options, attribs *powers.AttribNames, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.Style == "" {
		opts.Style = config.StylePretty
	}
	if opts.Format == "" {
		opts.Format = config.FormatJSON
	}
	if opts.BaseJSONURL != "" && !strings.HasSuffix(opts.BaseJSONURL, "/") {
		opts.BaseJSONURL += "/"
	}
	header := Header{Issue: opts.Issue, Source: opts.Source}
	if !opts.ExtractDate.IsZero() {
		header.ExtractDate = opts.ExtractDate.UTC().Format(time.RFC3339)
	}
	return &Writer{opts: opts, attribs: attribs, logger: logger, header: header}
}

// Write emits every document for the configured format, then the manifest.
// Files whose content did not change are left untouched.
func (w *Writer) Write(dict *powers.Dictionary) (*Result, error) {
	if err := os.MkdirAll(w.opts.OutputPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	w.result = &Result{
		Manifest: Manifest{
			Header: w.header,
			RunID:  w.opts.RunID,
			Format: w.opts.Format,
			Counts: dict.Counts(),
			Files:  make([]string, 0),
		},
		Hashes: make(map[string]string),
	}
	w.fxLinks = make(map[string]string)
	w.fxDirs = newDirNames()
	w.fxRecords = nil

	var err error
	switch w.opts.Format {
	case config.FormatJSON:
		err = w.writeJSON(dict)
	case config.FormatJSONL:
		err = w.writeJSONL(dict)
	default:
		err = fmt.Errorf("unknown output format %q", w.opts.Format)
	}
	if err != nil {
		return nil, err
	}

	if err := w.put(ManifestFile, w.result.Manifest); err != nil {
		return nil, err
	}

	w.logger.Info("Wrote output files",
		zap.Int("files", len(w.result.Hashes)),
		zap.Int("rewritten", w.result.Rewritten),
		zap.Int("unchanged", w.result.Unchanged),
	)
	return w.result, nil
}

func (w *Writer) writeJSON(dict *powers.Dictionary) error {
	catDirs := make(map[*powers.PowerCategory]string)
	used := newDirNames(archetypesDir, attribsDir, fxDir)
	for _, pcat := range dict.Included() {
		catDirs[pcat] = w.uniqueDir(used, pcat.Name.String())
	}

	root := RootDoc{
		Header:          w.header,
		Archetypes:      w.url(archetypesDir),
		PowerCategories: make([]RootCategory, 0),
	}
	for _, pcat := range dict.TopLevel() {
		root.PowerCategories = append(root.PowerCategories, RootCategory{
			Name:        pcat.Name.String(),
			DisplayName: pcat.DisplayName,
			Archetype:   singleArchetype(pcat, w.opts.Assets),
			URL:         w.url(catDirs[pcat]),
		})
	}
	if err := w.put(JSONFile, root); err != nil {
		return err
	}

	for _, pcat := range dict.Included() {
		catDir := catDirs[pcat]
		doc := CategoryDoc{
			Header:    w.header,
			Name:      pcat.Name.String(),
			Archetype: singleArchetype(pcat, w.opts.Assets),
			PowerSets: make([]CategorySet, 0, len(pcat.PowerSets)),
		}
		setDirs := newDirNames()
		for _, pset := range pcat.PowerSets {
			if !pset.IncludeInOutput {
				continue
			}
			setDir := w.uniqueDir(setDirs, pset.Name)
			doc.PowerSets = append(doc.PowerSets, CategorySet{
				Name:        pset.FullName.String(),
				DisplayName: pset.DisplayName,
				URL:         w.setURL(catDir, setDir),
			})
			setDoc := powerSetDoc(w.header, pset, w.attribs, w.opts.Assets)
			if err := w.linkFX(&setDoc, pset, 2); err != nil {
				return err
			}
			if err := w.put(path.Join(catDir, setDir, JSONFile), setDoc); err != nil {
				return err
			}
		}
		if err := w.put(path.Join(catDir, JSONFile), doc); err != nil {
			return err
		}
	}

	if err := w.put(path.Join(archetypesDir, JSONFile), w.archetypesDoc(dict)); err != nil {
		return err
	}
	return w.put(path.Join(attribsDir, JSONFile), w.attribsDoc())
}

func newDirNames(reserved ...string) map[string]bool {
	used := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		used[name] = true
	}
	return used
}

// uniqueDir picks the directory for name among its siblings. Names that
// fold to a taken or reserved directory get a numeric suffix.
func (w *Writer) uniqueDir(used map[string]bool, name string) string {
	base := MakeFileName(name)
	dir := base
	for i := 2; used[dir]; i++ {
		dir = fmt.Sprintf("%s-%d", base, i)
	}
	if dir != base {
		w.logger.Warn("Output directory already taken, using a suffixed name",
			zap.String("name", name),
			zap.String("dir", dir),
		)
	}
	used[dir] = true
	return dir
}

// CategoryRecord is one line of categories.jsonl.
type CategoryRecord struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name,omitempty"`
	TopLevel    bool          `json:"top_level"`
	Archetype   *ArchetypeDoc `json:"archetype,omitempty"`
	PowerSets   []string      `json:"power_sets"`
}

// PowerSetRecord is one line of power_sets.jsonl.
type PowerSetRecord struct {
	Category          string   `json:"category"`
	Name              string   `json:"name"`
	DisplayName       string   `json:"display_name,omitempty"`
	DisplayHelp       string   `json:"display_help,omitempty"`
	Icon              string   `json:"icon,omitempty"`
	OrderedPowerNames []string `json:"ordered_power_names"`
}

// PowerRecord is one line of powers.jsonl.
type PowerRecord struct {
	Category string `json:"category"`
	PowerSet string `json:"power_set"`
	PowerDoc
}

// writeJSONL writes one record per line, one file per table. The header
// lives in the manifest.
func (w *Writer) writeJSONL(dict *powers.Dictionary) error {
	categories := make([]CategoryRecord, 0)
	sets := make([]PowerSetRecord, 0)
	powerRecords := make([]PowerRecord, 0)

	for _, pcat := range dict.Included() {
		rec := CategoryRecord{
			Name:        pcat.Name.String(),
			DisplayName: pcat.DisplayName,
			TopLevel:    pcat.TopLevel,
			Archetype:   singleArchetype(pcat, w.opts.Assets),
			PowerSets:   make([]string, 0, len(pcat.PowerSets)),
		}
		for _, pset := range pcat.PowerSets {
			if !pset.IncludeInOutput {
				continue
			}
			rec.PowerSets = append(rec.PowerSets, pset.FullName.String())
			doc := powerSetDoc(Header{}, pset, w.attribs, w.opts.Assets)
			if err := w.linkFX(&doc, pset, 0); err != nil {
				return err
			}
			sets = append(sets, PowerSetRecord{
				Category:          pcat.Name.String(),
				Name:              doc.Name,
				DisplayName:       doc.DisplayName,
				DisplayHelp:       doc.DisplayHelp,
				Icon:              doc.Icon,
				OrderedPowerNames: doc.OrderedPowerNames,
			})
			for _, power := range doc.Powers {
				powerRecords = append(powerRecords, PowerRecord{
					Category: pcat.Name.String(),
					PowerSet: doc.Name,
					PowerDoc: power,
				})
			}
		}
		categories = append(categories, rec)
	}

	if err := putJSONL(w, categoriesFile, categories); err != nil {
		return err
	}
	if err := putJSONL(w, powerSetsFile, sets); err != nil {
		return err
	}
	if err := putJSONL(w, powersFile, powerRecords); err != nil {
		return err
	}
	if len(w.fxRecords) == 0 {
		return nil
	}
	return putJSONL(w, fxFile, w.fxRecords)
}

// linkFX fills in the FX links of a set's power documents. depth is how many
// directories below the output root the set document sits.
func (w *Writer) linkFX(doc *PowerSetDoc, pset *powers.BasePowerSet, depth int) error {
	byName := make(map[string]*powers.BasePower, len(pset.Powers))
	for _, power := range pset.Powers {
		byName[power.FullName.String()] = power
	}
	for i := range doc.Powers {
		pdoc := &doc.Powers[i]
		power, ok := byName[pdoc.Name]
		if !ok {
			continue
		}
		link, err := w.fxLink(power.FX, depth)
		if err != nil {
			return err
		}
		pdoc.FX = link
		for j := range pdoc.CustomFX {
			if pdoc.CustomFX[j].FX, err = w.fxLink(power.CustomFX[j].FX, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

// fxLink emits fx the first time its source file is seen and returns the link
// to it. Powers commonly share FX files, so the source file is the identity.
func (w *Writer) fxLink(fx *powers.PowerFX, depth int) (string, error) {
	if fx == nil || strings.TrimSpace(fx.SourceFile) == "" {
		return "", nil
	}
	key := strings.ToLower(strings.TrimSpace(fx.SourceFile))
	if link, ok := w.fxLinks[key]; ok {
		return link, nil
	}

	if w.opts.Format == config.FormatJSONL {
		rec := fxDoc(Header{}, fx)
		rec.SourceFile = key
		w.fxRecords = append(w.fxRecords, rec)
		w.fxLinks[key] = key
		return key, nil
	}

	dir := w.uniqueDir(w.fxDirs, key)
	if err := w.put(path.Join(fxDir, dir, JSONFile), fxDoc(w.header, fx)); err != nil {
		return "", err
	}
	link := w.url(fxDir, dir)
	if w.opts.BaseJSONURL == "" {
		link = strings.Repeat("../", depth) + link
	}
	w.fxLinks[key] = link
	return link, nil
}

func putJSONL[T any](w *Writer, rel string, records []T) error {
	data, err := fileutil.EncodeJSONL(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", rel, err)
	}
	return w.putBytes(rel, data)
}

func (w *Writer) archetypesDoc(dict *powers.Dictionary) ArchetypesDoc {
	doc := ArchetypesDoc{Header: w.header, Archetypes: make([]ArchetypeDoc, 0, dict.Archetypes.Len())}
	for at := range dict.Archetypes.Values() {
		doc.Archetypes = append(doc.Archetypes, *archetypeDoc(at, powers.PriSecNone, true, w.opts.Assets))
	}
	return doc
}

func (w *Writer) attribsDoc() AttribsDoc {
	names := w.attribs
	if names == nil {
		names = &powers.AttribNames{}
	}
	return AttribsDoc{
		Header:    w.header,
		Defense:   attribNameDocs(names.Defense),
		Damage:    attribNameDocs(names.Damage),
		Boost:     attribNameDocs(names.Boost),
		Group:     attribNameDocs(names.Group),
		Mode:      attribNameDocs(names.Mode),
		Elusivity: attribNameDocs(names.Elusivity),
		StackKey:  attribNameDocs(names.StackKey),
	}
}

// url addresses a document directory. With a base URL it is absolute and
// names the directory; without one it is relative and names the file.
func (w *Writer) url(segments ...string) string {
	dir := path.Join(segments...) + "/"
	if w.opts.BaseJSONURL != "" {
		return w.opts.BaseJSONURL + dir
	}
	return dir + JSONFile
}

// setURL addresses a set from its category document. Relative URLs start at
// the category directory.
func (w *Writer) setURL(catDir, setDir string) string {
	if w.opts.BaseJSONURL != "" {
		return w.url(catDir, setDir)
	}
	return w.url(setDir)
}

func (w *Writer) put(rel string, value any) error {
	var (
		data []byte
		err  error
	)
	if w.opts.Style == config.StyleCompact {
		data, err = json.Marshal(value)
	} else {
		data, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", rel, err)
	}
	return w.putBytes(rel, []byte(fileutil.EnsureTrailingNewline(string(data))))
}

func (w *Writer) putBytes(rel string, data []byte) error {
	target, err := outputFile(w.opts.OutputPath, rel)
	if err != nil {
		return err
	}
	if _, dup := w.result.Hashes[rel]; dup {
		w.logger.Warn("Output path written twice, keeping the later document", zap.String("path", rel))
	} else if rel != ManifestFile {
		w.result.Manifest.Files = append(w.result.Manifest.Files, rel)
	}

	written, err := fileutil.WriteIfChangedTracked(target, data)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	if written {
		w.result.Rewritten++
		w.logger.Debug("Writing", zap.String("path", rel))
	} else {
		w.result.Unchanged++
	}
	w.result.Hashes[rel] = fileutil.HashBytes(data)
	return nil
}

// RemoveStale deletes outputs a previous run wrote that this run did not.
// Paths are relative to outputDir; files already gone are ignored. Paths
// that leave outputDir are never touched and are reported together as
// ErrOutsideOutput once the rest are removed.
func RemoveStale(outputDir string, paths []string) (int, error) {
	removed := 0
	var rejected []error
	for _, rel := range paths {
		target, err := outputFile(outputDir, rel)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		err = os.Remove(target)
		if err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove stale output %s: %w", rel, err)
		}
		if err == nil {
			removed++
		}
	}
	return removed, errors.Join(rejected...)
}

// outputFile resolves a slash separated document path under root.
func outputFile(root, rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%q: %w", rel, ErrOutsideOutput)
	}
	return filepath.Join(root, local), nil
}
