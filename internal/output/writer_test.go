package output

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDictionary() *powers.Dictionary {
	blaster := &powers.Archetype{
		Name:            "Class_Blaster",
		DisplayName:     "Blaster",
		AllowedOrigins:  []string{"Science"},
		PrimaryCategory: namekey.New("Blaster_Ranged"),
		ClassKey:        namekey.New("@Class_Blaster"),
	}
	archetypes := keyed.New[powers.Archetype]()
	archetypes.Insert(blaster.ClassKey, blaster)

	flares := &powers.BasePower{
		Name:          "Flares",
		FullName:      namekey.New("Blaster_Ranged.Fire_Blast.Flares"),
		DisplayName:   "Flares",
		Type:          powers.PowerTypeClick,
		MaxBoosts:     6,
		RechargeTime:  4.000001,
		BoostsAllowed: []string{"Damage"},
		Archetypes:    []*powers.Archetype{blaster},
		Redirects: []powers.PowerRedirect{
			{Name: namekey.New("Redirects.Fire.Flares_Combo"), Requires: []string{"has_combo", "1", "=="}},
		},
		Effects: []*powers.EffectGroup{{
			Chance: 1,
			Templates: []*powers.AttribModTemplate{{
				Attribs:   []int{12, 99},
				Magnitude: 1.23456,
				Params:    &powers.PowerParam{PowerNames: []namekey.Key{namekey.New("Pool.Flight.Fly")}},
			}},
		}},
		IncludeInOutput: true,
	}
	flares.AllowEnhancementSetCategory("Ranged Damage")
	fireball := &powers.BasePower{
		Name:            "Fire_Ball",
		FullName:        namekey.New("Blaster_Ranged.Fire_Blast.Fire_Ball"),
		Type:            powers.PowerTypeClick,
		Archetypes:      []*powers.Archetype{blaster},
		IncludeInOutput: true,
	}
	hidden := &powers.BasePower{
		Name:     "Hidden",
		FullName: namekey.New("Blaster_Ranged.Fire_Blast.Hidden"),
	}
	fireBlast := &powers.BasePowerSet{
		Name:            "Fire_Blast",
		FullName:        namekey.New("Blaster_Ranged.Fire_Blast"),
		DisplayName:     "Fire Blast",
		PowerNames:      []namekey.Key{fireball.FullName, flares.FullName, hidden.FullName},
		Available:       []int{5, 0, 0},
		Powers:          []*powers.BasePower{fireball, flares, hidden},
		IncludeInOutput: true,
	}
	ranged := &powers.PowerCategory{
		Name:            namekey.New("Blaster_Ranged"),
		DisplayName:     "Blaster Ranged",
		PowerSets:       []*powers.BasePowerSet{fireBlast},
		Archetypes:      []*powers.Archetype{blaster},
		PriSec:          powers.PriSecPrimary,
		IncludeInOutput: true,
		TopLevel:        true,
	}

	combo := &powers.BasePower{
		Name:            "Flares_Combo",
		FullName:        namekey.New("Redirects.Fire.Flares_Combo"),
		Archetypes:      []*powers.Archetype{blaster},
		IncludeInOutput: true,
	}
	comboSet := &powers.BasePowerSet{
		Name:            "Fire",
		FullName:        namekey.New("Redirects.Fire"),
		PowerNames:      []namekey.Key{combo.FullName},
		Powers:          []*powers.BasePower{combo},
		IncludeInOutput: true,
	}
	redirects := &powers.PowerCategory{
		Name:            namekey.New("Redirects"),
		PowerSets:       []*powers.BasePowerSet{comboSet},
		IncludeInOutput: true,
	}
	unused := &powers.PowerCategory{Name: namekey.New("Unused")}

	attribs := &powers.AttribNames{Damage: []powers.AttribName{{Name: "Fire_Dmg", Offset: 12}}}
	return &powers.Dictionary{
		Categories:  []*powers.PowerCategory{ranged, redirects, unused},
		Archetypes:  archetypes,
		AttribNames: attribs,
	}
}

func newTestWriter(t *testing.T, opts Options, dict *powers.Dictionary) (*Writer, string) {
	t.Helper()
	if opts.OutputPath == "" {
		opts.OutputPath = t.TempDir()
	}
	opts.RunID = "run-1"
	opts.ExtractDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	opts.Issue = "27.7"
	opts.Source = "homecoming"
	return NewWriter(opts, dict.AttribNames, zap.NewNop()), opts.OutputPath
}

func readJSON(t *testing.T, path string, out any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestWriteJSONLayout(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{}, dict)

	result, err := w.Write(dict)
	require.NoError(t, err)

	wantFiles := []string{
		"index.json",
		"blaster-ranged/fire-blast/index.json",
		"blaster-ranged/index.json",
		"redirects/fire/index.json",
		"redirects/index.json",
		"archetypes/index.json",
		"attribs/index.json",
	}
	if diff := cmp.Diff(wantFiles, result.Manifest.Files); diff != "" {
		t.Fatalf("manifest files mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, result.Hashes, len(wantFiles)+1)
	require.Equal(t, len(wantFiles)+1, result.Rewritten)

	var root RootDoc
	readJSON(t, filepath.Join(dir, "index.json"), &root)
	require.Equal(t, "27.7", root.Issue)
	require.Equal(t, "2024-05-01T12:00:00Z", root.ExtractDate)
	require.Equal(t, "archetypes/index.json", root.Archetypes)
	require.Len(t, root.PowerCategories, 1, "only top level categories are listed")
	require.Equal(t, "blaster-ranged/index.json", root.PowerCategories[0].URL)
	require.NotNil(t, root.PowerCategories[0].Archetype)
	require.Equal(t, "Primary", root.PowerCategories[0].Archetype.PrimaryOrSecondary)
	require.Nil(t, root.PowerCategories[0].Archetype.ExtendedArchetype)

	var category CategoryDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "index.json"), &category)
	require.Equal(t, []CategorySet{{
		Name:        "Blaster_Ranged.Fire_Blast",
		DisplayName: "Fire Blast",
		URL:         "fire-blast/index.json",
	}}, category.PowerSets)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	require.Equal(t, []string{"Blaster_Ranged.Fire_Blast.Fire_Ball", "Blaster_Ranged.Fire_Blast.Flares"}, set.OrderedPowerNames)
	require.Len(t, set.Powers, 2, "excluded powers are not written")
	require.Equal(t, "Blaster_Ranged.Fire_Blast.Flares", set.Powers[0].Name, "sorted by available level")
	require.Equal(t, 1, set.Powers[0].AvailableAtLevel)
	require.Equal(t, 6, set.Powers[1].AvailableAtLevel)

	flares := set.Powers[0]
	require.Equal(t, 4.0, flares.RechargeTime)
	require.Equal(t, []string{"Class_Blaster"}, flares.Archetypes)
	require.Equal(t, []string{"Ranged Damage"}, flares.EnhancementSetCategoriesAllowed)
	require.Equal(t, "has_combo == 1", flares.Redirects[0].Requires)
	require.Equal(t, []string{"Fire_Dmg", "attrib_99"}, flares.Effects[0].Templates[0].Attribs)
	require.Equal(t, 1.2346, flares.Effects[0].Templates[0].Magnitude)
	require.Equal(t, "Power", flares.Effects[0].Templates[0].Params.Type)
	require.Equal(t, []string{"Pool.Flight.Fly"}, flares.Effects[0].Templates[0].Params.Powers)

	var archetypes ArchetypesDoc
	readJSON(t, filepath.Join(dir, "archetypes", "index.json"), &archetypes)
	require.Len(t, archetypes.Archetypes, 1)
	require.NotNil(t, archetypes.Archetypes[0].ExtendedArchetype)
	require.Equal(t, "Blaster_Ranged", archetypes.Archetypes[0].PrimaryCategory)

	var attribs AttribsDoc
	readJSON(t, filepath.Join(dir, "attribs", "index.json"), &attribs)
	require.Equal(t, "Fire_Dmg", attribs.Damage[0].Name)

	var manifest Manifest
	readJSON(t, filepath.Join(dir, ManifestFile), &manifest)
	require.Equal(t, "run-1", manifest.RunID)
	require.Equal(t, 2, manifest.Counts.Categories)
	require.Equal(t, 3, manifest.Counts.Powers)
}

func TestWriteWithBaseURL(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{BaseJSONURL: "https://example.test/powers"}, dict)

	_, err := w.Write(dict)
	require.NoError(t, err)

	var root RootDoc
	readJSON(t, filepath.Join(dir, "index.json"), &root)
	require.Equal(t, "https://example.test/powers/archetypes/", root.Archetypes)
	require.Equal(t, "https://example.test/powers/blaster-ranged/", root.PowerCategories[0].URL)

	var category CategoryDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "index.json"), &category)
	require.Equal(t, "https://example.test/powers/blaster-ranged/fire-blast/", category.PowerSets[0].URL)
}

func TestWriteSkipsUnchangedFiles(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{}, dict)
	_, err := w.Write(dict)
	require.NoError(t, err)

	again, _ := newTestWriter(t, Options{OutputPath: dir}, dict)
	result, err := again.Write(dict)
	require.NoError(t, err)
	require.Equal(t, 0, result.Rewritten)
	require.Equal(t, len(result.Hashes), result.Unchanged)
}

func TestWriteCompactStyle(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{Style: config.StyleCompact}, dict)

	_, err := w.Write(dict)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "\n"), "compact documents are a single line")
}

func TestWriteJSONLLayout(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{Format: config.FormatJSONL}, dict)

	result, err := w.Write(dict)
	require.NoError(t, err)
	require.Equal(t, []string{"categories.jsonl", "power_sets.jsonl", "powers.jsonl"}, result.Manifest.Files)

	lines := readLines(t, filepath.Join(dir, "powers.jsonl"))
	require.Len(t, lines, 3)

	var first PowerRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "Blaster_Ranged", first.Category)
	require.Equal(t, "Blaster_Ranged.Fire_Blast", first.PowerSet)
	require.Equal(t, "Blaster_Ranged.Fire_Blast.Flares", first.Name)

	categories := readLines(t, filepath.Join(dir, "categories.jsonl"))
	require.Len(t, categories, 2)
	var redirects CategoryRecord
	require.NoError(t, json.Unmarshal([]byte(categories[1]), &redirects))
	require.False(t, redirects.TopLevel)
	require.Equal(t, []string{"Redirects.Fire"}, redirects.PowerSets)
}

func TestRemoveStale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pool"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pool", "index.json"), []byte("{}"), 0644))

	removed, err := RemoveStale(dir, []string{"pool/index.json", "gone/index.json"})
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	_, err = os.Stat(filepath.Join(dir, "pool", "index.json"))
	require.True(t, os.IsNotExist(err))
}

func TestRemoveStaleRefusesPathsOutsideOutput(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	require.NoError(t, os.MkdirAll(dir, 0755))
	outside := filepath.Join(parent, "x")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.jsonl"), []byte("{}"), 0644))

	removed, err := RemoveStale(dir, []string{"../x", "old.jsonl", "/etc/passwd", ""})
	require.ErrorIs(t, err, ErrOutsideOutput)
	require.Contains(t, err.Error(), `"../x"`)
	require.Equal(t, 1, removed, "paths inside the output directory are still removed")
	_, err = os.Stat(outside)
	require.NoError(t, err)
}

func TestPutBytesRefusesPathsOutsideOutput(t *testing.T) {
	dict := testDictionary()
	w, dir := newTestWriter(t, Options{OutputPath: filepath.Join(t.TempDir(), "out")}, dict)
	w.result = &Result{Hashes: make(map[string]string)}

	err := w.putBytes("../escaped/index.json", []byte("{}\n"))
	require.ErrorIs(t, err, ErrOutsideOutput)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escaped"))
	require.True(t, os.IsNotExist(err))
	require.Empty(t, w.result.Hashes)
}

func TestWriteKeepsHostileNamesInsideOutput(t *testing.T) {
	dict := testDictionary()
	ranged := dict.Categories[0]
	ranged.Name = namekey.New("../escaped")
	ranged.PowerSets[0].Name = "../../sets/Fire_Blast"

	parent := t.TempDir()
	w, dir := newTestWriter(t, Options{OutputPath: filepath.Join(parent, "out")}, dict)
	result, err := w.Write(dict)
	require.NoError(t, err)

	require.Contains(t, result.Manifest.Files, "---escaped/index.json")
	require.Contains(t, result.Manifest.Files, "---escaped/------sets-fire-blast/index.json")
	for rel := range result.Hashes {
		require.True(t, filepath.IsLocal(filepath.FromSlash(rel)), rel)
	}
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1, "nothing written next to the output directory")
	assertFile(t, filepath.Join(dir, "---escaped", "index.json"))
}

func TestWriteReservesFixedDirectories(t *testing.T) {
	dict := testDictionary()
	dict.Categories[0].Name = namekey.New("Archetypes")
	dict.Categories[1].Name = namekey.New("ARCHETYPES")
	w, dir := newTestWriter(t, Options{}, dict)

	result, err := w.Write(dict)
	require.NoError(t, err)

	wantFiles := []string{
		"index.json",
		"archetypes-2/fire-blast/index.json",
		"archetypes-2/index.json",
		"archetypes-3/fire/index.json",
		"archetypes-3/index.json",
		"archetypes/index.json",
		"attribs/index.json",
	}
	if diff := cmp.Diff(wantFiles, result.Manifest.Files); diff != "" {
		t.Fatalf("manifest files mismatch (-want +got):\n%s", diff)
	}

	var root RootDoc
	readJSON(t, filepath.Join(dir, "index.json"), &root)
	require.Equal(t, "archetypes-2/index.json", root.PowerCategories[0].URL)

	var list ArchetypesDoc
	readJSON(t, filepath.Join(dir, "archetypes", "index.json"), &list)
	require.Len(t, list.Archetypes, 1, "archetype list is not replaced by a category")

	var category CategoryDoc
	readJSON(t, filepath.Join(dir, "archetypes-2", "index.json"), &category)
	require.Equal(t, "Archetypes", category.Name)
}

func TestWriteSeparatesSetsThatFoldTogether(t *testing.T) {
	dict := testDictionary()
	ranged := dict.Categories[0]
	twin := &powers.BasePowerSet{
		Name:            "Fire Blast",
		FullName:        namekey.New("Blaster_Ranged.Fire Blast"),
		IncludeInOutput: true,
	}
	ranged.PowerSets = append(ranged.PowerSets, twin)
	w, dir := newTestWriter(t, Options{}, dict)

	_, err := w.Write(dict)
	require.NoError(t, err)

	var category CategoryDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "index.json"), &category)
	require.Len(t, category.PowerSets, 2)
	require.Equal(t, "fire-blast/index.json", category.PowerSets[0].URL)
	require.Equal(t, "fire-blast-2/index.json", category.PowerSets[1].URL)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	require.Equal(t, "Blaster_Ranged.Fire_Blast", set.Name)
}

func TestWriteAssetURLs(t *testing.T) {
	dict := testDictionary()
	blaster, _ := dict.Archetypes.Lookup("@Class_Blaster")
	blaster.Icon = "ArchetypeIcon_Blaster.tga"
	ranged := dict.Categories[0]
	fireBlast := ranged.PowerSets[0]
	fireBlast.IconName = "FireBlast_Set.tga"
	fireBlast.Powers[0].IconName = "FireBlast_FireBall.tga"
	fireBlast.Powers[1].IconName = "FireBlast_Flares.tga"

	assets := &config.AssetsConfig{
		BaseURL:             "https://cdn.example.test/",
		Ext:                 ".png",
		ArchetypeIconFormat: "archetypes/{icon}",
		PowersIconFormat:    "powers/{md5}/{icon}",
	}
	w, dir := newTestWriter(t, Options{Assets: assets}, dict)
	_, err := w.Write(dict)
	require.NoError(t, err)

	var list ArchetypesDoc
	readJSON(t, filepath.Join(dir, "archetypes", "index.json"), &list)
	require.Equal(t, "https://cdn.example.test/archetypes/archetypeicon_blaster.png", list.Archetypes[0].Icon)

	var root RootDoc
	readJSON(t, filepath.Join(dir, "index.json"), &root)
	require.Equal(t, list.Archetypes[0].Icon, root.PowerCategories[0].Archetype.Icon)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	fireBall := "https://cdn.example.test/powers/" + md5Shard("fireblast_fireball.png") + "/fireblast_fireball.png"
	require.Equal(t, fireBall, set.Powers[1].Icon)
	require.Equal(t, "https://cdn.example.test/powers/"+md5Shard("fireblast_flares.png")+"/fireblast_flares.png", set.Powers[0].Icon)
	require.Equal(t, fireBall, set.Icon, "set icon comes from its first listed power")
}

func TestWriteWithoutAssetsKeepsIconNames(t *testing.T) {
	dict := testDictionary()
	fireBlast := dict.Categories[0].PowerSets[0]
	fireBlast.IconName = "FireBlast_Set.tga"
	fireBlast.Powers[1].IconName = "FireBlast_Flares.tga"
	w, dir := newTestWriter(t, Options{}, dict)
	_, err := w.Write(dict)
	require.NoError(t, err)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	require.Equal(t, "FireBlast_Set.tga", set.Icon)
	require.Equal(t, "FireBlast_Flares.tga", set.Powers[0].Icon)
}

func withFX(dict *powers.Dictionary) {
	fireBlast := dict.Categories[0].PowerSets[0]
	fireball, flares := fireBlast.Powers[0], fireBlast.Powers[1]
	flares.FX = &powers.PowerFX{SourceFile: "FX/Powers/Fire/Flares.pfx", AttackFX: "flares_attack.fx", FramesBeforeHit: 15}
	flares.CustomFX = []powers.CustomPowerFX{{
		Token: "Blue",
		FX:    &powers.PowerFX{SourceFile: "fx/powers/fire/flares_blue.pfx"},
	}}
	fireball.FX = &powers.PowerFX{SourceFile: "fx/powers/fire/FLARES.pfx", AttackFX: "ignored_duplicate.fx"}
}

func TestWriteFXOncePerSourceFile(t *testing.T) {
	dict := testDictionary()
	withFX(dict)
	w, dir := newTestWriter(t, Options{}, dict)

	result, err := w.Write(dict)
	require.NoError(t, err)

	fxFiles := make([]string, 0)
	for _, rel := range result.Manifest.Files {
		if strings.HasPrefix(rel, "fx/") {
			fxFiles = append(fxFiles, rel)
		}
	}
	require.Equal(t, []string{
		"fx/fx-powers-fire-flares-pfx/index.json",
		"fx/fx-powers-fire-flares-blue-pfx/index.json",
	}, fxFiles)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	flares, fireball := set.Powers[0], set.Powers[1]
	require.Equal(t, "../../fx/fx-powers-fire-flares-pfx/index.json", flares.FX)
	require.Equal(t, flares.FX, fireball.FX, "shared source file links one document")
	require.Equal(t, "Blue", flares.CustomFX[0].Token)
	require.Equal(t, "../../fx/fx-powers-fire-flares-blue-pfx/index.json", flares.CustomFX[0].FX)

	var fx FXDoc
	readJSON(t, filepath.Join(dir, "fx", "fx-powers-fire-flares-pfx", "index.json"), &fx)
	require.Equal(t, "flares_attack.fx", fx.AttackFX, "first power seen wins")
	require.Equal(t, 15, fx.FramesBeforeHit)
	require.Equal(t, "27.7", fx.Issue)
}

func TestWriteFXLinksWithBaseURL(t *testing.T) {
	dict := testDictionary()
	withFX(dict)
	w, dir := newTestWriter(t, Options{BaseJSONURL: "https://example.test/powers/"}, dict)
	_, err := w.Write(dict)
	require.NoError(t, err)

	var set PowerSetDoc
	readJSON(t, filepath.Join(dir, "blaster-ranged", "fire-blast", "index.json"), &set)
	require.Equal(t, "https://example.test/powers/fx/fx-powers-fire-flares-pfx/", set.Powers[0].FX)
}

func TestWriteJSONLFXRecords(t *testing.T) {
	dict := testDictionary()
	withFX(dict)
	w, dir := newTestWriter(t, Options{Format: config.FormatJSONL}, dict)

	result, err := w.Write(dict)
	require.NoError(t, err)
	require.Equal(t, []string{"categories.jsonl", "power_sets.jsonl", "powers.jsonl", "fx.jsonl"}, result.Manifest.Files)

	lines := readLines(t, filepath.Join(dir, "fx.jsonl"))
	require.Len(t, lines, 2)
	var first FXDoc
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "fx/powers/fire/flares.pfx", first.SourceFile)

	var power PowerRecord
	require.NoError(t, json.Unmarshal([]byte(readLines(t, filepath.Join(dir, "powers.jsonl"))[0]), &power))
	require.Equal(t, first.SourceFile, power.FX)
}

func TestAssetURLShardsByFileName(t *testing.T) {
	assets := &config.AssetsConfig{BaseURL: "https://x.test/", Ext: ".png", PowersIconFormat: "{md5}/{icon}"}
	// md5("a.png") starts with 32.
	require.Equal(t, "https://x.test/32/a.png", powerIcon("A.tga", assets))
	require.Equal(t, "", powerIcon("", assets))
	require.Equal(t, "A.tga", powerIcon("A.tga", nil))
}

func TestMakeFileName(t *testing.T) {
	require.Equal(t, "tanker-melee", MakeFileName("Tanker_Melee"))
	require.Equal(t, "super-strength", MakeFileName(" Super Strength "))
	require.Equal(t, "---escaped", MakeFileName("../escaped"))
	require.Equal(t, "a-b-c", MakeFileName(`a\b/c`))
	require.Equal(t, "unnamed", MakeFileName("  "))
}

func md5Shard(name string) string {
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:1])
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.False(t, info.IsDir(), path)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}
