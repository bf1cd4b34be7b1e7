package docs

import (
	"fmt"
	"strings"

	"github.com/LeDeathAmongst/vrt-cogs/internal/archive"
	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

// DefaultIgnored lists core/system cogs skipped by multi-cog exports.
var DefaultIgnored = []string{"core", "assistant"}

// Artifact is one named output document ready for delivery.
type Artifact struct {
	Name string
	Data []byte
}

// Packager turns assembled document sets into delivery artifacts:
// per-tier rst files for one cog, or one compressed archive spanning
// every loaded cog.
type Packager struct {
	reg     *cog.Registry
	ignored map[string]bool
}

func NewPackager(reg *cog.Registry, ignored []string) *Packager {
	skip := make(map[string]bool, len(ignored))
	for _, name := range ignored {
		skip[name] = true
	}
	return &Packager{reg: reg, ignored: skip}
}

// BuildCog assembles one cog and returns one artifact per non-empty
// tier blob, plus a csv artifact per blob name when csvExport is set.
// Returns cog.ErrNotFound when the cog is not loaded.
func (p *Packager) BuildCog(name string, opts AssembleOptions, band Band, csvExport bool) ([]Artifact, error) {
	c, err := p.reg.Get(name)
	if err != nil {
		return nil, err
	}
	return p.buildArtifacts(c, opts, band, csvExport)
}

func (p *Packager) buildArtifacts(c *cog.Cog, opts AssembleOptions, band Band, csvExport bool) ([]Artifact, error) {
	set, rows := Assemble(c, opts, band)

	var csvData []byte
	if csvExport {
		var err error
		csvData, err = EncodeCSV(rows)
		if err != nil {
			return nil, err
		}
	}

	var out []Artifact
	for _, tier := range Tiers() {
		blob := set[tier]
		if strings.TrimSpace(blob) == "" {
			continue
		}
		base := fmt.Sprintf("%s/cog_%s", tier, c.Name)
		out = append(out, Artifact{Name: base + ".rst", Data: []byte(blob)})
		if csvExport {
			out = append(out, Artifact{Name: base + ".csv", Data: csvData})
		}
	}
	return out, nil
}

// BuildAll assembles every loaded cog except the ignore list and wraps
// all artifacts plus the index document into one compressed archive.
// Returns the archive and the processed cog names.
func (p *Packager) BuildAll(opts AssembleOptions, band Band, csvExport bool) (Artifact, []string, error) {
	builder := archive.NewBuilder()

	var processed []string
	for _, name := range p.reg.Names() {
		if p.ignored[name] {
			continue
		}
		c, err := p.reg.Get(name)
		if err != nil {
			return Artifact{}, nil, err
		}
		arts, err := p.buildArtifacts(c, opts, band, csvExport)
		if err != nil {
			return Artifact{}, nil, err
		}
		for _, a := range arts {
			if err := builder.Add(a.Name, a.Data); err != nil {
				return Artifact{}, nil, err
			}
		}
		processed = append(processed, name)
	}

	if err := builder.Add("index.rst", []byte(GenerateIndex(processed))); err != nil {
		return Artifact{}, nil, err
	}

	data, err := builder.Bytes()
	if err != nil {
		return Artifact{}, nil, err
	}
	return Artifact{Name: "cogdocs.zip", Data: data}, processed, nil
}
