// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package geom

import "fmt"

// MaxPointsInEntity is the number of point slots an entity carries.
const MaxPointsInEntity = 12

// EntityType is the kind of a sketch entity.
type EntityType uint32

// The entity types.
const (
	EntityPointIn3D     EntityType = 2000
	EntityPointIn2D     EntityType = 2001
	EntityPointNTrans   EntityType = 2010
	EntityPointNRotAA   EntityType = 2013
	EntityNormalIn3D    EntityType = 3000
	EntityNormalIn2D    EntityType = 3001
	EntityDistance      EntityType = 4000
	EntityFaceNormalPt  EntityType = 5000
	EntityWorkplane     EntityType = 10000
	EntityLineSegment   EntityType = 11000
	EntityCubic         EntityType = 12000
	EntityCubicPeriodic EntityType = 12001
	EntityCircle        EntityType = 13000
	EntityArcOfCircle   EntityType = 14000
	EntityTTFText       EntityType = 15000
	EntityImage         EntityType = 16000
)

var entityTypeNames = map[EntityType]string{
	EntityPointIn3D:     "point-in-3d",
	EntityPointIn2D:     "point-in-2d",
	EntityPointNTrans:   "point-n-trans",
	EntityPointNRotAA:   "point-n-rot-aa",
	EntityNormalIn3D:    "normal-in-3d",
	EntityNormalIn2D:    "normal-in-2d",
	EntityDistance:      "distance",
	EntityFaceNormalPt:  "face-normal-pt",
	EntityWorkplane:     "workplane",
	EntityLineSegment:   "line-segment",
	EntityCubic:         "cubic",
	EntityCubicPeriodic: "cubic-periodic",
	EntityCircle:        "circle",
	EntityArcOfCircle:   "arc-of-circle",
	EntityTTFText:       "ttf-text",
	EntityImage:         "image",
}

// String implements fmt.Stringer.
func (t EntityType) String() string {
	if s, ok := entityTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseEntityType returns the EntityType named s.
func ParseEntityType(s string) (EntityType, bool) {
	for t, name := range entityTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Entity is a sketch entity: a point, normal, distance, workplane or curve,
// together with the values computed for it by the last solve.
type Entity struct {
	H            HEntity
	Type         EntityType
	Construction bool
	Style        HStyle
	Str          string
	Font         string
	File         string

	Point       [MaxPointsInEntity]HEntity
	ExtraPoints int
	Normal      HEntity
	Distance    HEntity
	Workplane   HEntity

	ActPoint    Vector
	ActNormal   Quaternion
	ActDistance float64
	ActVisible  bool
}

// Param is a scalar unknown of the constraint solver.
type Param struct {
	H   HParam
	Val float64
}

// RequestType is the kind of a request.
type RequestType uint32

// The request types.
const (
	RequestWorkplane     RequestType = 100
	RequestDatumPoint    RequestType = 101
	RequestLineSegment   RequestType = 200
	RequestCubic         RequestType = 300
	RequestCubicPeriodic RequestType = 301
	RequestCircle        RequestType = 400
	RequestArcOfCircle   RequestType = 500
	RequestTTFText       RequestType = 600
	RequestImage         RequestType = 700
)

var requestTypeNames = map[RequestType]string{
	RequestWorkplane:     "workplane",
	RequestDatumPoint:    "datum-point",
	RequestLineSegment:   "line-segment",
	RequestCubic:         "cubic",
	RequestCubicPeriodic: "cubic-periodic",
	RequestCircle:        "circle",
	RequestArcOfCircle:   "arc-of-circle",
	RequestTTFText:       "ttf-text",
	RequestImage:         "image",
}

// String implements fmt.Stringer.
func (t RequestType) String() string {
	if s, ok := requestTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseRequestType returns the RequestType named s.
func ParseRequestType(s string) (RequestType, bool) {
	for t, name := range requestTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Request is a user request that generates one or more entities.
type Request struct {
	H            HRequest
	Type         RequestType
	Group        HGroup
	Construction bool
}

// DescriptionString returns the short human readable name of the request,
// e.g. "r004-line-segment".
func (r *Request) DescriptionString() string {
	return fmt.Sprintf("r%03x-%s", uint32(r.H), r.Type)
}

// GroupType is the kind of a group.
type GroupType uint32

// The group types.
const (
	GroupDrawing3D        GroupType = 5000
	GroupDrawingWorkplane GroupType = 5001
	GroupExtrude          GroupType = 5100
	GroupLathe            GroupType = 5101
	GroupRevolve          GroupType = 5102
	GroupHelix            GroupType = 5103
	GroupRotate           GroupType = 5200
	GroupTranslate        GroupType = 5201
	GroupLinked           GroupType = 5300
)

var groupTypeNames = map[GroupType]string{
	GroupDrawing3D:        "drawing-3d",
	GroupDrawingWorkplane: "drawing-workplane",
	GroupExtrude:          "extrude",
	GroupLathe:            "lathe",
	GroupRevolve:          "revolve",
	GroupHelix:            "helix",
	GroupRotate:           "rotate",
	GroupTranslate:        "translate",
	GroupLinked:           "linked",
}

// String implements fmt.Stringer.
func (t GroupType) String() string {
	if s, ok := groupTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseGroupType returns the GroupType named s.
func ParseGroupType(s string) (GroupType, bool) {
	for t, name := range groupTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Group is a step in the model's feature history.
type Group struct {
	H    HGroup
	Type GroupType
	Name string
}

// Kernel resolves handles to the kernel objects that own entities. It is the
// only query the dump packages make against the kernel; implementations must
// not mutate kernel state.
type Kernel interface {
	Request(h HRequest) (*Request, bool)
	Group(h HGroup) (*Group, bool)
}

// Sketch is a map backed Kernel. The zero value is an empty sketch.
type Sketch struct {
	Requests map[HRequest]*Request
	Groups   map[HGroup]*Group
}

var _ Kernel = (*Sketch)(nil)

// AddRequest registers r with the sketch.
func (s *Sketch) AddRequest(r Request) {
	if s.Requests == nil {
		s.Requests = make(map[HRequest]*Request)
	}
	s.Requests[r.H] = &r
}

// AddGroup registers g with the sketch.
func (s *Sketch) AddGroup(g Group) {
	if s.Groups == nil {
		s.Groups = make(map[HGroup]*Group)
	}
	s.Groups[g.H] = &g
}

// Request implements Kernel.
func (s *Sketch) Request(h HRequest) (*Request, bool) {
	r, ok := s.Requests[h]
	return r, ok
}

// Group implements Kernel.
func (s *Sketch) Group(h HGroup) (*Group, bool) {
	g, ok := s.Groups[h]
	return g, ok
}
