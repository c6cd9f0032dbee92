package services

import (
	"context"
	"sort"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/selection"
)

// PrefsAPI is the slice of the API client the preference editor uses.
type PrefsAPI interface {
	GetMatchConfig(ctx context.Context) (models.MatchConfig, error)
	UpdateMatchConfig(ctx context.Context, update api.MatchConfigUpdate) (models.MatchConfig, error)
	ListOpportunityTypes(ctx context.Context) ([]models.OpportunityType, error)
	ListDomains(ctx context.Context) ([]models.Domain, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// Taxonomy node kinds. The three taxonomy tables have independent id
// spaces, so tree node ids carry the kind in the high bits.
const (
	kindOpportunityType int64 = iota + 1
	kindDomain
	kindSpecialization
)

// NodeID packs a taxonomy kind and a table primary key into one tree id.
func NodeID(kind, id int64) int64 { return kind<<32 | id }

// SplitNodeID is the inverse of NodeID.
func SplitNodeID(node int64) (kind, id int64) { return node >> 32, node & (1<<32 - 1) }

// remoteLocationName is the location node offered alongside the country
// subtree so fully remote postings stay selectable.
const remoteLocationName = "Remote"

// homeCountryName scopes the location picker: only this country's subtree
// (plus the Remote node) is offered, mirroring the backend's coverage.
const homeCountryName = "Ethiopia"

// PrefsEditor is an in-memory draft of the user's matching preferences.
// Tree selections and scalar fields are edited locally and only reach the
// backend on Save; Load discards the draft and re-seeds from the server.
type PrefsEditor struct {
	// Taxonomy is the opportunity-type > domain > specialization forest,
	// with NodeID-packed ids.
	Taxonomy *selection.Tree
	// Locations is the scoped location forest with raw table ids.
	Locations *selection.Tree

	// Preferred holds selected taxonomy nodes. Selecting a node marks its
	// ancestor chain too; deselecting removes the node's whole subtree.
	Preferred selection.Set
	// Muted holds muted opportunity-type nodes. Muting is flat, there is
	// no cascade to domains or specializations.
	Muted selection.Set
	// LocationSel holds selected location ids.
	LocationSel selection.Set

	// Config carries the scalar draft fields (threshold, channels,
	// frequencies, compensation bounds). Relationship fields inside it are
	// the last-loaded server state, not the draft; the sets above are
	// authoritative for those.
	Config models.MatchConfig
}

// SelectTaxonomy marks a taxonomy node and its ancestors as preferred.
func (e *PrefsEditor) SelectTaxonomy(node int64) {
	e.Taxonomy.Select(e.Preferred, node)
}

// DeselectTaxonomy removes a taxonomy node and its descendants from the
// preferred set. Ancestors stay.
func (e *PrefsEditor) DeselectTaxonomy(node int64) {
	e.Taxonomy.Deselect(e.Preferred, node)
}

// ToggleMuted flips an opportunity type in or out of the muted set.
func (e *PrefsEditor) ToggleMuted(typeID int64) {
	node := NodeID(kindOpportunityType, typeID)
	if !e.Muted.Contains(node) {
		e.Muted.Add(node)
		return
	}
	e.Muted.Remove(node)
}

// SelectLocation marks a location and its ancestors.
func (e *PrefsEditor) SelectLocation(id int64) {
	e.Locations.Select(e.LocationSel, id)
}

// DeselectLocation removes a location and its descendants.
func (e *PrefsEditor) DeselectLocation(id int64) {
	e.Locations.Deselect(e.LocationSel, id)
}

// selectedByKind returns the raw table ids of the selected nodes of one
// taxonomy kind, sorted for a stable wire payload.
func (e *PrefsEditor) selectedByKind(sel selection.Set, kind int64) []int64 {
	ids := []int64{}
	for node := range sel.Iter() {
		k, id := SplitNodeID(node)
		if k == kind {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// update builds the PATCH payload from the draft. Relationship lists are
// always sent, so clearing a set clears it server-side too.
func (e *PrefsEditor) update() api.MatchConfigUpdate {
	locations := []int64{}
	for id := range e.LocationSel.Iter() {
		locations = append(locations, id)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i] < locations[j] })

	c := e.Config
	return api.MatchConfigUpdate{
		ThresholdScore:        &c.ThresholdScore,
		NotificationFrequency: &c.NotificationFrequency,
		NotifyViaTelegram:     &c.NotifyViaTelegram,
		NotifyViaEmail:        &c.NotifyViaEmail,
		NotifyViaWebPush:      &c.NotifyViaWebPush,
		TelegramFrequency:     c.TelegramFrequency,
		EmailFrequency:        c.EmailFrequency,
		WebPushFrequency:      c.WebPushFrequency,
		MaxAlertsPerDay:       c.MaxAlertsPerDay,
		QuietHoursStart:       c.QuietHoursStart,
		QuietHoursEnd:         c.QuietHoursEnd,
		WorkMode:              &c.WorkMode,
		EmploymentType:        &c.EmploymentType,
		ExperienceLevel:       &c.ExperienceLevel,
		MinCompensation:       c.MinCompensation,
		MaxCompensation:       c.MaxCompensation,
		DeadlineAfter:         c.DeadlineAfter,
		DeadlineBefore:        c.DeadlineBefore,

		PreferredOpportunityTypes: e.selectedByKind(e.Preferred, kindOpportunityType),
		MutedOpportunityTypes:     e.selectedByKind(e.Muted, kindOpportunityType),
		PreferredDomains:          e.selectedByKind(e.Preferred, kindDomain),
		PreferredSpecializations:  e.selectedByKind(e.Preferred, kindSpecialization),
		PreferredLocations:        locations,
	}
}

// PrefsService loads, edits and saves the user's single preference record.
type PrefsService struct {
	api PrefsAPI
}

func NewPrefsService(api PrefsAPI) *PrefsService {
	return &PrefsService{api: api}
}

// Load fetches the preference record and the taxonomy, and builds a fresh
// editor seeded with the server state.
func (s *PrefsService) Load(ctx context.Context) (*PrefsEditor, error) {
	config, err := s.api.GetMatchConfig(ctx)
	if err != nil {
		return nil, err
	}

	taxonomy, err := s.loadTaxonomy(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.loadLocations(ctx)
	if err != nil {
		return nil, err
	}

	e := &PrefsEditor{
		Taxonomy:    taxonomy,
		Locations:   locations,
		Preferred:   selection.NewSet(),
		Muted:       selection.NewSet(),
		LocationSel: selection.NewSet(),
		Config:      config,
	}
	seedEditor(e, config)
	return e, nil
}

// Save patches the draft to the backend and returns a fresh editor built
// from the server's response, so stale draft state never survives a save.
func (s *PrefsService) Save(ctx context.Context, e *PrefsEditor) (*PrefsEditor, error) {
	config, err := s.api.UpdateMatchConfig(ctx, e.update())
	if err != nil {
		return nil, err
	}

	fresh := &PrefsEditor{
		Taxonomy:    e.Taxonomy,
		Locations:   e.Locations,
		Preferred:   selection.NewSet(),
		Muted:       selection.NewSet(),
		LocationSel: selection.NewSet(),
		Config:      config,
	}
	seedEditor(fresh, config)
	return fresh, nil
}

// loadTaxonomy builds the three-tier forest. Lists arrive parent-first
// (types, then domains, then specializations), matching Tree.Add's
// requirement.
func (s *PrefsService) loadTaxonomy(ctx context.Context) (*selection.Tree, error) {
	tree := selection.NewTree()

	types, err := s.api.ListOpportunityTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		tree.Add(NodeID(kindOpportunityType, t.ID), t.Name, 0)
	}

	domains, err := s.api.ListDomains(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range domains {
		parent := int64(0)
		if d.OpportunityType != nil {
			parent = NodeID(kindOpportunityType, d.OpportunityType.ID)
		}
		tree.Add(NodeID(kindDomain, d.ID), d.Name, parent)
	}

	specs, err := s.api.ListSpecializations(ctx)
	if err != nil {
		return nil, err
	}
	for _, sp := range specs {
		parent := int64(0)
		if sp.Domain != nil {
			parent = NodeID(kindDomain, sp.Domain.ID)
		}
		tree.Add(NodeID(kindSpecialization, sp.ID), sp.Name, parent)
	}

	return tree, nil
}

// loadLocations builds the full location forest, then scopes it to the home
// country's subtree plus the Remote node. When the home country is missing
// from the data the full forest is offered unscoped.
func (s *PrefsService) loadLocations(ctx context.Context) (*selection.Tree, error) {
	locations, err := s.api.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	full := selection.NewTree()
	// Parents may appear only nested inside children; add them first.
	var addChain func(l *models.Location)
	addChain = func(l *models.Location) {
		if l == nil {
			return
		}
		addChain(l.Parent)
		parent := int64(0)
		if l.Parent != nil {
			parent = l.Parent.ID
		}
		full.Add(l.ID, l.Name, parent)
	}
	for i := range locations {
		addChain(&locations[i])
	}

	home, ok := full.FindByName(homeCountryName)
	if !ok {
		return full, nil
	}
	scoped := full.Subtree(home)
	if remote, ok := full.FindByName(remoteLocationName); ok {
		scoped.Add(remote, remoteLocationName, 0)
	}
	return scoped, nil
}

// seedEditor marks the server-side relationship state in the editor's sets.
// Nodes referencing taxonomy entries that no longer exist are skipped.
func seedEditor(e *PrefsEditor, config models.MatchConfig) {
	for _, t := range config.PreferredOpportunityTypes {
		e.Taxonomy.Select(e.Preferred, NodeID(kindOpportunityType, t.ID))
	}
	for _, d := range config.PreferredDomains {
		e.Taxonomy.Select(e.Preferred, NodeID(kindDomain, d.ID))
	}
	for _, sp := range config.PreferredSpecializations {
		e.Taxonomy.Select(e.Preferred, NodeID(kindSpecialization, sp.ID))
	}
	for _, t := range config.MutedOpportunityTypes {
		node := NodeID(kindOpportunityType, t.ID)
		if e.Taxonomy.Contains(node) {
			e.Muted.Add(node)
		}
	}
	for _, l := range config.PreferredLocations {
		e.Locations.Select(e.LocationSel, l.ID)
	}
}
