package flappy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// layoutDoc is the on-disk form of an opening layout:
//
//	pairs:
//	  - {offset: 420, gap: 200, upper_y: 300}
//	  - {offset: 380, gap: 240, upper_y: 450}
type layoutDoc struct {
	Pairs []Placement `yaml:"pairs"`
}

// ParseLayout decodes a layout document. Unknown keys are rejected so a
// typo does not silently fall back to a sampled gap.
func ParseLayout(data []byte) ([]Placement, error) {
	var doc layoutDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("flappy: layout is empty")
		}
		return nil, fmt.Errorf("flappy: cannot decode layout: %w", err)
	}
	if len(doc.Pairs) == 0 {
		return nil, errors.New("flappy: layout has no pairs")
	}
	return doc.Pairs, nil
}

// MarshalLayout encodes placements in the format ParseLayout reads.
func MarshalLayout(pl []Placement) ([]byte, error) {
	data, err := yaml.Marshal(layoutDoc{Pairs: pl})
	if err != nil {
		return nil, fmt.Errorf("flappy: cannot encode layout: %w", err)
	}
	return data, nil
}

// ValidateLayout checks placements against the spacing and traversability
// rules of cfg. Extra entries beyond the pool size are allowed and ignored.
func ValidateLayout(cfg config.FlappyConfig, pl []Placement) error {
	minGap := cfg.Actor.Height + cfg.Obstacles.GapMargin
	for i, p := range pl {
		if err := p.Validate(cfg.Obstacles.Width, minGap); err != nil {
			return fmt.Errorf("flappy: placement %d: %w", i, err)
		}
	}
	return nil
}
