package tables

import (
	"fmt"

	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

// Table base names, without extension.
const (
	TableMessages       = "clientmessages-en"
	TableAttribNames    = "attrib_names"
	TableClasses        = "classes"
	TableBoostSets      = "boostsets"
	TableVillainClasses = "villain_classes"
	TableVillains       = "villaindef"
	TableCategories     = "powercats"
	TablePowerSets      = "powersets"
	TablePowers         = "powers"
)

// loadState carries one LoadDirectory call.
type loadState struct {
	registry *Registry
	dir      string
	tables   *powers.Tables
	issues   []Issue
	conv     converter
}

// LoadDirectory reads every table dump in dir in dependency order: messages
// and attribute names (both optional), classes, boost sets, villain classes,
// villain defs, categories, power sets and powers. Problems with single
// records are returned as issues; a missing or unreadable table fails the load
// with a *StageError.
func (r *Registry) LoadDirectory(dir string) (*powers.Tables, []Issue, error) {
	s := &loadState{
		registry: r,
		dir:      dir,
		tables:   powers.NewTables(),
		issues:   make([]Issue, 0),
	}
	s.conv = converter{messages: s.tables.Messages}

	steps := []func() error{
		s.loadMessages,
		s.loadAttribNames,
		s.loadClasses,
		s.loadBoostSets,
		s.loadVillainClasses,
		s.loadVillains,
		s.loadCategories,
		s.loadPowerSets,
		s.loadPowers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, s.issues, err
		}
	}
	return s.tables, s.issues, nil
}

// read decodes a table into out. Optional tables that are absent report
// found=false without an error.
func (s *loadState) read(base, what string, optional bool, out any) (bool, error) {
	path, ok := s.registry.Locate(s.dir, base)
	if !ok {
		if optional {
			s.registry.logger.Debug("Optional table not found", zap.String("table", base))
			return false, nil
		}
		return false, &StageError{
			Stage: fmt.Sprintf("unable to read %s table", what),
			Err:   fmt.Errorf("%w: %s", ErrTableMissing, base),
		}
	}
	if err := s.registry.DecodeFile(path, out); err != nil {
		return false, &StageError{Stage: fmt.Sprintf("unable to parse %s table", what), Err: err}
	}
	return true, nil
}

func (s *loadState) issue(table, key, message string) {
	s.issues = append(s.issues, Issue{Table: table, Key: key, Severity: SeverityWarning, Message: message})
}

// insert stores value under key, reporting unnamed and duplicate records.
// The later duplicate wins.
func insert[T any](s *loadState, table string, store *keyed.Keyed[T], key namekey.Key, value *T) {
	if key.IsZero() {
		s.issue(table, "", "record without a name skipped")
		return
	}
	if _, replaced := store.Insert(key, value); replaced {
		s.issue(table, key.String(), "duplicate key, later record wins")
	}
}

func (s *loadState) loadMessages() error {
	var file messagesFile
	found, err := s.read(TableMessages, "client messages", true, &file)
	if err != nil || !found {
		return err
	}
	for id, text := range file.Messages {
		s.tables.Messages.Add(id, text)
	}
	s.registry.logger.Info("Read client messages", zap.Int("count", s.tables.Messages.Len()))
	return nil
}

func (s *loadState) loadAttribNames() error {
	var file attribNamesFile
	found, err := s.read(TableAttribNames, "attribute names", true, &file)
	if err != nil || !found {
		return err
	}
	names := &powers.AttribNames{
		Defense:   attribNames(file.Defense),
		Damage:    attribNames(file.Damage),
		Boost:     attribNames(file.Boost),
		Group:     attribNames(file.Group),
		Mode:      attribNames(file.Mode),
		Elusivity: attribNames(file.Elusivity),
		StackKey:  attribNames(file.StackKey),
	}
	names.Index()
	s.tables.AttribNames = names
	s.registry.logger.Info("Read attribute names", zap.Int("count", names.Len()))
	return nil
}

func (s *loadState) loadClasses() error {
	var file classesFile
	if _, err := s.read(TableClasses, "classes", false, &file); err != nil {
		return err
	}
	for _, rec := range file.Classes {
		at := s.conv.archetype(rec, false)
		if at.Name == "" {
			s.issue(TableClasses, "", "record without a name skipped")
			continue
		}
		insert(s, TableClasses, s.tables.Archetypes, at.ClassKey, at)
	}
	s.registry.logger.Info("Read archetypes", zap.Int("count", s.tables.Archetypes.Len()))
	return nil
}

func (s *loadState) loadBoostSets() error {
	var file boostSetsFile
	if _, err := s.read(TableBoostSets, "boost sets", false, &file); err != nil {
		return err
	}
	for _, rec := range file.BoostSets {
		set := s.conv.boostSet(rec)
		insert(s, TableBoostSets, s.tables.BoostSets, set.Name, set)
	}
	s.registry.logger.Info("Read boost sets", zap.Int("count", s.tables.BoostSets.Len()))
	return nil
}

func (s *loadState) loadVillainClasses() error {
	var file classesFile
	if _, err := s.read(TableVillainClasses, "villain classes", false, &file); err != nil {
		return err
	}
	for _, rec := range file.Classes {
		at := s.conv.archetype(rec, true)
		if at.Name == "" {
			s.issue(TableVillainClasses, "", "record without a name skipped")
			continue
		}
		insert(s, TableVillainClasses, s.tables.VillainArchetypes, at.ClassKey, at)
	}
	s.registry.logger.Info("Read villain archetypes", zap.Int("count", s.tables.VillainArchetypes.Len()))
	return nil
}

func (s *loadState) loadVillains() error {
	var file villainsFile
	if _, err := s.read(TableVillains, "villain definitions", false, &file); err != nil {
		return err
	}
	for _, rec := range file.Villains {
		def := s.conv.villain(rec)
		insert(s, TableVillains, s.tables.Villains, def.Name, def)
	}
	s.registry.logger.Info("Read villain definitions", zap.Int("count", s.tables.Villains.Len()))
	return nil
}

func (s *loadState) loadCategories() error {
	var file categoriesFile
	if _, err := s.read(TableCategories, "power categories", false, &file); err != nil {
		return err
	}
	for _, rec := range file.Categories {
		pcat := s.conv.category(rec)
		insert(s, TableCategories, s.tables.Categories, pcat.Name, pcat)
	}
	s.registry.logger.Info("Read power categories", zap.Int("count", s.tables.Categories.Len()))
	return nil
}

func (s *loadState) loadPowerSets() error {
	var file powerSetsFile
	if _, err := s.read(TablePowerSets, "power sets", false, &file); err != nil {
		return err
	}
	for _, rec := range file.PowerSets {
		pset := s.conv.powerSet(rec)
		insert(s, TablePowerSets, s.tables.PowerSets, pset.FullName, pset)
	}
	s.registry.logger.Info("Read power sets", zap.Int("count", s.tables.PowerSets.Len()))
	return nil
}

func (s *loadState) loadPowers() error {
	var file powersFile
	if _, err := s.read(TablePowers, "powers", false, &file); err != nil {
		return err
	}
	for _, rec := range file.Powers {
		power, err := s.conv.power(rec)
		if err != nil {
			s.issue(TablePowers, power.FullName.String(), err.Error())
		}
		insert(s, TablePowers, s.tables.Powers, power.FullName, power)
	}
	s.registry.logger.Info("Read powers", zap.Int("count", s.tables.Powers.Len()))
	return nil
}
