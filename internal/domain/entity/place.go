// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"net/url"
	"strconv"
	"strings"
)

// Reserved parameter keys baked into the identifier of path-backed places.
const (
	PathURIMarker           = "path_uri"
	FileNameMarker          = "file_name"
	HasVersionSupportMarker = "has_version_support"
)

// PartKind classifies a workbench part that can be opened or closed.
type PartKind string

const (
	PartPerspective PartKind = "perspective"
	PartScreen      PartKind = "screen"
	PartEditor      PartKind = "editor"
)

// Param is a single key/value pair of a place request.
// Params are kept ordered so identifiers serialize deterministically.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// PlaceRequest identifies something the workbench can navigate to.
type PlaceRequest interface {
	// Identifier returns the bare identifier, without parameters.
	Identifier() string
	// FullIdentifier returns the identifier with its parameters appended
	// as a query string ("id?k=v&k2=v2").
	FullIdentifier() string
	// Parameters returns the caller supplied parameters, in insertion order.
	Parameters() []Param
}

// DefaultPlaceRequest is a place identified by name plus optional parameters.
type DefaultPlaceRequest struct {
	ID     string
	Params []Param
}

// NewPlaceRequest creates a place request for the given identifier.
func NewPlaceRequest(id string) *DefaultPlaceRequest {
	return &DefaultPlaceRequest{ID: id}
}

// AddParameter appends a parameter, replacing an existing value for the same key.
func (p *DefaultPlaceRequest) AddParameter(key, value string) *DefaultPlaceRequest {
	p.Params = setParam(p.Params, key, value)
	return p
}

func (p *DefaultPlaceRequest) Identifier() string { return p.ID }

func (p *DefaultPlaceRequest) Parameters() []Param { return p.Params }

func (p *DefaultPlaceRequest) FullIdentifier() string {
	if len(p.Params) == 0 {
		return p.ID
	}
	return p.ID + "?" + joinParams(p.Params, "=")
}

// Path locates a file backing an editor.
type Path struct {
	URI               string
	FileName          string
	HasVersionSupport bool
}

// PathPlaceRequest is an editor place backed by a file path.
type PathPlaceRequest struct {
	ID     string
	Path   Path
	Params []Param
}

// NewPathPlaceRequest creates an editor place for the given path.
func NewPathPlaceRequest(id string, path Path) *PathPlaceRequest {
	return &PathPlaceRequest{ID: id, Path: path}
}

// AddParameter appends a parameter, replacing an existing value for the same key.
func (p *PathPlaceRequest) AddParameter(key, value string) *PathPlaceRequest {
	p.Params = setParam(p.Params, key, value)
	return p
}

func (p *PathPlaceRequest) Identifier() string { return p.ID }

func (p *PathPlaceRequest) Parameters() []Param { return p.Params }

// FullIdentifier renders the path markers first, then the caller parameters.
// The path URI is query-escaped; the file name is used literally.
func (p *PathPlaceRequest) FullIdentifier() string {
	return p.identifierWith("=")
}

// EditorIdentifier is FullIdentifier with every caller parameter written as
// "key==value", which keeps them distinguishable from the path markers once
// the identifier is embedded in a bookmark token.
func (p *PathPlaceRequest) EditorIdentifier() string {
	return p.identifierWith("==")
}

func (p *PathPlaceRequest) identifierWith(paramSep string) string {
	var sb strings.Builder
	sb.WriteString(p.ID)
	sb.WriteString("?")
	sb.WriteString(PathURIMarker + "=" + url.QueryEscape(p.Path.URI))
	sb.WriteString("&" + FileNameMarker + "=" + p.Path.FileName)
	sb.WriteString("&" + HasVersionSupportMarker + "=" + strconv.FormatBool(p.Path.HasVersionSupport))
	if len(p.Params) > 0 {
		sb.WriteString("&")
		sb.WriteString(joinParams(p.Params, paramSep))
	}
	return sb.String()
}

func joinParams(params []Param, sep string) string {
	parts := make([]string, 0, len(params))
	for _, kv := range params {
		parts = append(parts, kv.Key+sep+kv.Value)
	}
	return strings.Join(parts, "&")
}

func setParam(params []Param, key, value string) []Param {
	for i := range params {
		if params[i].Key == key {
			params[i].Value = value
			return params
		}
	}
	return append(params, Param{Key: key, Value: value})
}

// SamePlace reports whether two place requests resolve to the same full identifier.
func SamePlace(a, b PlaceRequest) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.FullIdentifier() == b.FullIdentifier()
}
