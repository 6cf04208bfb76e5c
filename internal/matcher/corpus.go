package matcher

import (
	"github.com/you-humble/pcbuilder/internal/model"
)

type KeyMode int

const (
	// KeyComposite matches GPUs by name and chipset.
	KeyComposite KeyMode = iota
	// KeyChipset matches GPUs by chipset alone.
	KeyChipset
)

func (m KeyMode) String() string {
	if m == KeyChipset {
		return "chipset"
	}
	return "composite"
}

type entry struct {
	part model.PartSummary
	key  string
}

// Corpus is the match surface of one category, in catalog order.
type Corpus struct {
	category model.Category
	mode     KeyMode
	entries  []entry
}

func NewCorpus(category model.Category, parts []model.PartSummary, mode KeyMode) *Corpus {
	c := &Corpus{
		category: category,
		mode:     mode,
		entries:  make([]entry, 0, len(parts)),
	}

	for _, p := range parts {
		p.Category = category
		c.entries = append(c.entries, entry{part: p, key: effectiveKey(p, mode)})
	}

	return c
}

func (c *Corpus) Category() model.Category { return c.category }
func (c *Corpus) Mode() KeyMode            { return c.mode }
func (c *Corpus) Len() int                 { return len(c.entries) }

func (c *Corpus) Parts() []model.PartSummary {
	out := make([]model.PartSummary, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.part
	}
	return out
}

func (c *Corpus) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.part.Name
	}
	return out
}

func effectiveKey(p model.PartSummary, mode KeyMode) string {
	if p.Category == model.CategoryGPU && mode == KeyChipset && p.Chipset != "" {
		return p.Chipset
	}
	return p.EffectiveName()
}
