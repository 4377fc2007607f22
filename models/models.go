// Package models defines the estimate domain types and their persisted
// JSON layout.
package models

import (
	"time"
)

// Photo attachment limits carried over from the capture screens.
const (
	MaxRoomPhotos     = 4
	MaxCabinetPhotos  = 6
	MaxExteriorPhotos = 4
)

// Room is a single interior room line of an estimate. The seven subtotal
// fields are only ever written together by the aggregator; InteriorTotal
// is derived from them so it can never drift.
type Room struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	IncludeWalls       bool `json:"includeWalls"`
	IncludeCeilings    bool `json:"includeCeilings"`
	IncludeTrim        bool `json:"includeTrim"`
	IncludeDoors       bool `json:"includeDoors"`
	IncludeDoorCasing  bool `json:"includeDoorCasing"`
	IncludeWindows     bool `json:"includeWindows"`
	IncludeFeatureWall bool `json:"includeFeatureWall"`

	DoorCount       int     `json:"doorCount"`
	DoorCasingCount int     `json:"doorCasingCount"`
	WindowCount     int     `json:"windowCount"`
	FeatureWallSqFt float64 `json:"featureWallSqFt"`

	// Display-ordered photo blobs, capped at MaxRoomPhotos. Pricing
	// never looks at them.
	Images [][]byte `json:"images,omitempty"`

	SubtotalWalls       float64 `json:"subtotalWalls"`
	SubtotalCeilings    float64 `json:"subtotalCeilings"`
	SubtotalTrim        float64 `json:"subtotalTrim"`
	SubtotalDoors       float64 `json:"subtotalDoors"`
	SubtotalDoorCasings float64 `json:"subtotalDoorCasings"`
	SubtotalWindows     float64 `json:"subtotalWindows"`
	SubtotalFeatureWall float64 `json:"subtotalFeatureWall"`
}

// InteriorTotal is the sum of the seven category subtotals.
func (r *Room) InteriorTotal() float64 {
	return r.SubtotalWalls + r.SubtotalCeilings + r.SubtotalTrim +
		r.SubtotalDoors + r.SubtotalDoorCasings + r.SubtotalWindows +
		r.SubtotalFeatureWall
}

// AddImage appends a photo blob, dropping it once the cap is reached.
// Reports whether the photo was kept.
func (r *Room) AddImage(blob []byte) bool {
	if len(r.Images) >= MaxRoomPhotos {
		return false
	}
	r.Images = append(r.Images, blob)
	return true
}

// SideArea is one exterior elevation face. Length and width arrive as raw
// strings from the form layer; anything unparsable prices as zero.
type SideArea struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Length     string  `json:"length"`
	Width      string  `json:"width"`
	IsBody     bool    `json:"isBody"`
	IsTrim     bool    `json:"isTrim"`
	TotalPrice float64 `json:"totalPrice"`
}

// CabinetData is the optional cabinetry section of an estimate. At most
// one per project.
type CabinetData struct {
	DoorCount   int      `json:"numberOfDoors"`
	DrawerCount int      `json:"numberOfDrawers"`
	Notes       string   `json:"notes,omitempty"`
	Photos      [][]byte `json:"photos,omitempty"`
	TotalPrice  float64  `json:"totalPrice"`
}

// AddPhoto appends a photo blob, dropping it once the cap is reached.
func (c *CabinetData) AddPhoto(blob []byte) bool {
	if len(c.Photos) >= MaxCabinetPhotos {
		return false
	}
	c.Photos = append(c.Photos, blob)
	return true
}

// ExteriorExtras holds the house/deck/fence figures priced directly on the
// exterior screen rather than as elevation sides. Raw numeric fields stay
// strings; the prices are recomputed as a unit by the aggregator.
type ExteriorExtras struct {
	HouseSqFt string `json:"houseSqFt"`

	DeckLength      string `json:"deckLength"`
	DeckWidth       string `json:"deckWidth"`
	SandingRequired bool   `json:"sandingRequired"`

	FenceLength        string `json:"fenceLength"`
	FenceHeight        string `json:"fenceHeight"`
	IsTransparentStain bool   `json:"isTransparentStain"`
	IsSolidStain       bool   `json:"isSolidStain"`
	BothSides          bool   `json:"bothSides"`

	Photos [][]byte `json:"photos,omitempty"`

	HouseTotal float64 `json:"houseTotal"`
	DeckPrice  float64 `json:"deckPrice"`
	FencePrice float64 `json:"fencePrice"`
}

// AddPhoto appends a photo blob, dropping it once the cap is reached.
func (x *ExteriorExtras) AddPhoto(blob []byte) bool {
	if len(x.Photos) >= MaxExteriorPhotos {
		return false
	}
	x.Photos = append(x.Photos, blob)
	return true
}

// SetTransparentStain toggles the transparent/semi-transparent stain flag.
// Turning it on clears the solid flag; the two are mutually exclusive.
func (x *ExteriorExtras) SetTransparentStain(on bool) {
	x.IsTransparentStain = on
	if on {
		x.IsSolidStain = false
	}
}

// SetSolidStain toggles the solid body stain flag. Turning it on clears
// the transparent flag.
func (x *ExteriorExtras) SetSolidStain(on bool) {
	x.IsSolidStain = on
	if on {
		x.IsTransparentStain = false
	}
}

// Total is the exterior-extras contribution to the grand total.
func (x *ExteriorExtras) Total() float64 {
	return x.HouseTotal + x.DeckPrice + x.FencePrice
}

// Project is one client estimate: contact fields plus the three job
// category collections. CabinetData and ExteriorExtras are optional and
// stay absent in the serialized record when nil.
type Project struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"clientName"`
	ClientEmail   string          `json:"clientEmail"`
	ClientPhone   string          `json:"clientPhone"`
	ClientAddress string          `json:"clientAddress"`
	InteriorData  []Room          `json:"interiorData"`
	CabinetData   *CabinetData    `json:"cabinetData,omitempty"`
	ExteriorData  []SideArea      `json:"exteriorData"`
	Exterior      *ExteriorExtras `json:"exteriorExtras,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	// Revision is bumped on every structural edit so a caller can tell
	// whether a background render result is stale. Not persisted.
	Revision int64 `json:"-"`
}

// GrandTotal is a live sum over every category present; nothing is cached.
func (p *Project) GrandTotal() float64 {
	var total float64
	for i := range p.InteriorData {
		total += p.InteriorData[i].InteriorTotal()
	}
	for i := range p.ExteriorData {
		total += p.ExteriorData[i].TotalPrice
	}
	if p.CabinetData != nil {
		total += p.CabinetData.TotalPrice
	}
	if p.Exterior != nil {
		total += p.Exterior.Total()
	}
	return total
}

// Clone returns a deep copy, so a snapshot handed to a background render
// cannot observe later edits to the live project.
func (p *Project) Clone() *Project {
	cp := *p

	cp.InteriorData = make([]Room, len(p.InteriorData))
	for i := range p.InteriorData {
		room := p.InteriorData[i]
		room.Images = cloneBlobs(p.InteriorData[i].Images)
		cp.InteriorData[i] = room
	}

	cp.ExteriorData = make([]SideArea, len(p.ExteriorData))
	copy(cp.ExteriorData, p.ExteriorData)

	if p.CabinetData != nil {
		cab := *p.CabinetData
		cab.Photos = cloneBlobs(p.CabinetData.Photos)
		cp.CabinetData = &cab
	}
	if p.Exterior != nil {
		ext := *p.Exterior
		ext.Photos = cloneBlobs(p.Exterior.Photos)
		cp.Exterior = &ext
	}
	return &cp
}

func cloneBlobs(blobs [][]byte) [][]byte {
	if blobs == nil {
		return nil
	}
	out := make([][]byte, len(blobs))
	for i, b := range blobs {
		out[i] = append([]byte(nil), b...)
	}
	return out
}
