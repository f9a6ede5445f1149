// Package script reads navigation scripts: YAML files listing the open and
// close events a workbench session went through.
//
//	session: 20251224_120000_demo
//	events:
//	  - {action: open, kind: perspective, place: Home}
//	  - {action: open, kind: screen, place: Log, params: {level: debug}}
//	  - {action: open, kind: dock, place: Props, position: W}
//	  - {action: close, kind: screen, place: Log, params: {level: debug}}
//	  - {action: flush}
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/workbench/navstate/internal/domain/entity"
)

// Actions understood in a script.
const (
	ActionOpen  = "open"
	ActionClose = "close"
	ActionFlush = "flush"
	ActionLoad  = "load"
)

// KindDock is the event kind for docks, next to the entity part kinds.
const KindDock = "dock"

// ErrInvalidScript wraps every validation failure.
var ErrInvalidScript = errors.New("invalid navigation script")

// Script is a parsed navigation script.
type Script struct {
	SessionID    entity.SessionID `yaml:"session"`
	DefaultPlace string           `yaml:"default_place"`
	MaxURLSize   int              `yaml:"max_url_size"`
	Events       []Event          `yaml:"events"`
}

// Event is one navigation step.
type Event struct {
	Action string `yaml:"action"`
	Kind   string `yaml:"kind"`
	Place  string `yaml:"place"`
	Params Params `yaml:"params"`
	Dock   bool   `yaml:"dock"`

	// Editors
	Path              string `yaml:"path"`
	FileName          string `yaml:"file_name"`
	HasVersionSupport bool   `yaml:"has_version_support"`

	// Docks
	Position    string `yaml:"position"`
	Perspective string `yaml:"perspective"`

	// Load
	Token string `yaml:"token"`
}

// Params keeps the document order of a YAML mapping.
type Params []entity.Param

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping", node.Line)
	}
	out := make(Params, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: param %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, entity.Param{Key: k.Value, Value: v.Value})
	}
	*p = out
	return nil
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every event.
func (s *Script) Validate() error {
	for i := range s.Events {
		if err := s.Events[i].validate(); err != nil {
			return fmt.Errorf("%w: event %d: %v", ErrInvalidScript, i+1, err)
		}
	}
	return nil
}

func (e *Event) validate() error {
	e.Action = strings.ToLower(strings.TrimSpace(e.Action))
	e.Kind = strings.ToLower(strings.TrimSpace(e.Kind))

	switch e.Action {
	case ActionFlush:
		return nil
	case ActionLoad:
		if e.Token == "" {
			return errors.New("load needs a token")
		}
		return nil
	case ActionOpen, ActionClose:
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}

	if strings.TrimSpace(e.Place) == "" {
		return errors.New("place is required")
	}

	switch e.Kind {
	case string(entity.PartPerspective), string(entity.PartScreen):
	case string(entity.PartEditor):
		if e.Path == "" && e.FileName != "" {
			return errors.New("file_name needs a path")
		}
	case KindDock:
		if _, ok := entity.ParseDockPosition(e.Position); !ok {
			return fmt.Errorf("invalid dock position %q", e.Position)
		}
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}

// PlaceRequest builds the place the event refers to.
func (e *Event) PlaceRequest() entity.PlaceRequest {
	if e.Kind == string(entity.PartEditor) && e.Path != "" {
		place := entity.NewPathPlaceRequest(e.Place, entity.Path{
			URI:               e.Path,
			FileName:          e.FileName,
			HasVersionSupport: e.HasVersionSupport,
		})
		for _, p := range e.Params {
			place.AddParameter(p.Key, p.Value)
		}
		return place
	}

	place := entity.NewPlaceRequest(e.Place)
	for _, p := range e.Params {
		place.AddParameter(p.Key, p.Value)
	}
	return place
}

// DockRequest builds the dock of a dock event.
func (e *Event) DockRequest() *entity.Dock {
	position, _ := entity.ParseDockPosition(e.Position)
	return entity.NewDock(position, e.PlaceRequest(), e.Perspective)
}
