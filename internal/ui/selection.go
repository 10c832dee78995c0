package ui

import (
	"encoding/json"
	"fmt"
)

// SelectionKind tags what, if anything, is open in the modal.
type SelectionKind string

const (
	SelectNone    SelectionKind = "none"
	SelectProject SelectionKind = "project"
	SelectService SelectionKind = "service"
)

// Selection is the single modal slot: nothing, one project, or one service.
// Picking one kind replaces the other, so two modals can never be open.
type Selection struct {
	kind    SelectionKind
	project int
	service string
}

// NoSelection is the closed modal.
func NoSelection() Selection { return Selection{kind: SelectNone} }

// ProjectSelection opens the project with the given id.
func ProjectSelection(id int) Selection { return Selection{kind: SelectProject, project: id} }

// ServiceSelection opens the service with the given slug.
func ServiceSelection(slug string) Selection { return Selection{kind: SelectService, service: slug} }

// Kind reports the variant. The zero Selection is SelectNone.
func (s Selection) Kind() SelectionKind {
	if s.kind == "" {
		return SelectNone
	}
	return s.kind
}

// Open reports whether a modal is showing.
func (s Selection) Open() bool { return s.Kind() != SelectNone }

// Project returns the selected project id.
func (s Selection) Project() (int, bool) {
	return s.project, s.kind == SelectProject
}

// Service returns the selected service slug.
func (s Selection) Service() (string, bool) {
	return s.service, s.kind == SelectService
}

func (s Selection) String() string {
	switch s.Kind() {
	case SelectProject:
		return fmt.Sprintf("project(%d)", s.project)
	case SelectService:
		return fmt.Sprintf("service(%s)", s.service)
	}
	return "none"
}

type selectionJSON struct {
	Kind    SelectionKind `json:"kind"`
	Project int           `json:"project,omitempty"`
	Service string        `json:"service,omitempty"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{Kind: s.Kind(), Project: s.project, Service: s.service})
}
