package edit

import (
	"strings"

	"github.com/omniscale/cycletag/cycleway"
	"github.com/pkg/errors"
)

// Batch is the content of an edit file.
type Batch struct {
	LeftHandTraffic bool   `yaml:"left_hand_traffic"`
	Edits           []Edit `yaml:"edits"`
}

// Edit is the cycleway choice for a single carriageway.
type Edit struct {
	ID    int64             `yaml:"id"`
	Tags  map[string]string `yaml:"tags"`
	Left  *Side             `yaml:"left"`
	Right *Side             `yaml:"right"`
	// LeftHandTraffic overrides the traffic side of the batch.
	LeftHandTraffic *bool `yaml:"left_hand_traffic"`
}

// Side is the choice for one side. Direction is nil if it was not
// configured, the default direction for the side is used in that case.
type Side struct {
	Cycleway  cycleway.Cycleway
	Direction *cycleway.Direction
}

type sideConfig struct {
	Cycleway  string `yaml:"cycleway"`
	Direction string `yaml:"direction"`
}

// UnmarshalYAML accepts `{cycleway: track, direction: both}` or the
// short form `track/both`. The direction is optional in both forms.
func (s *Side) UnmarshalYAML(unmarshal func(interface{}) error) error {
	conf := sideConfig{}
	var short string
	if err := unmarshal(&short); err == nil {
		parts := strings.SplitN(short, "/", 2)
		conf.Cycleway = parts[0]
		if len(parts) == 2 {
			conf.Direction = parts[1]
		}
	} else if err := unmarshal(&conf); err != nil {
		return err
	}

	c, err := cycleway.ParseCycleway(conf.Cycleway)
	if err != nil {
		return err
	}
	s.Cycleway = c
	s.Direction = nil
	if conf.Direction != "" {
		d, err := cycleway.ParseDirection(conf.Direction)
		if err != nil {
			return err
		}
		s.Direction = &d
	}
	return nil
}

func (s *Side) resolve(isRight, isLeftHandTraffic bool) *cycleway.CyclewayAndDirection {
	if s == nil {
		return nil
	}
	cd := &cycleway.CyclewayAndDirection{Cycleway: s.Cycleway}
	if s.Direction != nil {
		cd.Direction = *s.Direction
	} else {
		cd.Direction = cycleway.DefaultDirection(isRight, isLeftHandTraffic)
	}
	return cd
}

func (b *Batch) prepare() error {
	ids := make(map[int64]struct{}, len(b.Edits))
	for i, e := range b.Edits {
		if e.Left == nil && e.Right == nil {
			return errors.Errorf("edit #%d (id %d) without left or right", i+1, e.ID)
		}
		if e.ID != 0 {
			if _, ok := ids[e.ID]; ok {
				return errors.Errorf("duplicate edit id %d", e.ID)
			}
			ids[e.ID] = struct{}{}
		}
		for k, v := range e.Tags {
			if k == "" || v == "" {
				return errors.Errorf("edit #%d (id %d) with empty tag key or value '%s=%s'", i+1, e.ID, k, v)
			}
		}
	}
	return nil
}
