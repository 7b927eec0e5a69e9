// Package georef holds the static reference table of Angolan provinces
// and municipalities. The table is embedded at build time; lookups are
// read-only and safe for concurrent use.
package georef

import (
	_ "embed"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

//go:embed regions.yaml
var regionsYAML []byte

type regionTable struct {
	Provinces      []model.LocationProfile `yaml:"provinces"`
	Municipalities []model.LocationProfile `yaml:"municipalities"`
}

// Catalog resolves region identifiers and names to location profiles.
type Catalog struct {
	byID   map[string]*model.LocationProfile
	byName map[string]string // folded name -> canonical ID
	order  []string          // IDs in declaration order
}

// NewCatalog parses the embedded region table.
func NewCatalog() (*Catalog, error) {
	var table regionTable
	if err := yaml.Unmarshal(regionsYAML, &table); err != nil {
		return nil, eris.Wrap(err, "georef: parse region table")
	}

	c := &Catalog{
		byID:   make(map[string]*model.LocationProfile),
		byName: make(map[string]string),
	}

	add := func(p model.LocationProfile, kind model.RegionKind) error {
		p.Kind = kind
		if p.ID == "" {
			return eris.Errorf("georef: region %q has no id", p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return eris.Errorf("georef: duplicate region id %s", p.ID)
		}
		stored := p
		c.byID[p.ID] = &stored
		c.byName[foldKey(p.Name)] = p.ID
		c.order = append(c.order, p.ID)
		return nil
	}

	for _, p := range table.Provinces {
		if err := add(p, model.RegionProvince); err != nil {
			return nil, err
		}
	}
	for _, m := range table.Municipalities {
		if err := add(m, model.RegionMunicipality); err != nil {
			return nil, err
		}
		if m.Province != "" {
			if _, ok := c.byID[m.Province]; !ok {
				return nil, eris.Errorf("georef: municipality %s references unknown province %s", m.ID, m.Province)
			}
		}
	}

	zap.L().Debug("region catalog loaded",
		zap.Int("provinces", len(table.Provinces)),
		zap.Int("municipalities", len(table.Municipalities)),
	)
	return c, nil
}

// Lookup resolves a region by canonical ID or by display name. Name
// matching is case-insensitive and ignores diacritics, so "uige" and
// "Uíge" resolve to the same province.
func (c *Catalog) Lookup(idOrName string) (*model.LocationProfile, error) {
	if p, ok := c.byID[canonicalID(idOrName)]; ok {
		return p, nil
	}
	if id, ok := c.byName[foldKey(idOrName)]; ok {
		return c.byID[id], nil
	}
	return nil, eris.Errorf("georef: unknown region %q", idOrName)
}

// Provinces returns all provinces in declaration order.
func (c *Catalog) Provinces() []*model.LocationProfile {
	var out []*model.LocationProfile
	for _, id := range c.order {
		if p := c.byID[id]; p.Kind == model.RegionProvince {
			out = append(out, p)
		}
	}
	return out
}

// MunicipalitiesOf returns the municipalities belonging to a province,
// sorted by name.
func (c *Catalog) MunicipalitiesOf(provinceID string) ([]*model.LocationProfile, error) {
	prov, ok := c.byID[canonicalID(provinceID)]
	if !ok || prov.Kind != model.RegionProvince {
		return nil, eris.Errorf("georef: unknown province %q", provinceID)
	}

	var out []*model.LocationProfile
	for _, id := range c.order {
		if p := c.byID[id]; p.Kind == model.RegionMunicipality && p.Province == prov.ID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// All returns every region, provinces first, in declaration order.
func (c *Catalog) All() []*model.LocationProfile {
	out := make([]*model.LocationProfile, 0, len(c.order))
	for _, id := range c.order {
		if p := c.byID[id]; p.Kind == model.RegionProvince {
			out = append(out, p)
		}
	}
	for _, id := range c.order {
		if p := c.byID[id]; p.Kind == model.RegionMunicipality {
			out = append(out, p)
		}
	}
	return out
}
