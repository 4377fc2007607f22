// Package services provides the pricing calculators, aggregation and
// report/export generation for painting estimates.
package services

import (
	"paintestimator/config"
)

// Per-category line item calculators. Each is a pure function of its
// measurements and the rate table: same inputs, same subtotal, no state.
// Dimensions are assumed non-negative (the parse boundary guarantees it);
// counts clamp to zero.

func CalcWalls(length, width, height float64, rates config.Rates) float64 {
	wallArea := 2 * height * (length + width)
	return wallArea * rates.WallsPerSqFt
}

func CalcCeilings(length, width float64, rates config.Rates) float64 {
	return length * width * rates.CeilingsPerSqFt
}

func CalcTrim(length, width float64, rates config.Rates) float64 {
	perimeter := 2 * (length + width)
	return perimeter * rates.TrimPerLinearFt
}

func CalcDoors(count int, rates config.Rates) float64 {
	if count < 0 {
		count = 0
	}
	return float64(count) * rates.PerDoor
}

func CalcDoorCasings(count int, rates config.Rates) float64 {
	if count < 0 {
		count = 0
	}
	return float64(count) * rates.PerDoorCasing
}

func CalcWindows(count int, rates config.Rates) float64 {
	if count < 0 {
		count = 0
	}
	return float64(count) * rates.PerWindow
}

func CalcFeatureWall(area float64, rates config.Rates) float64 {
	return area * rates.FeatureWallPerSqFt
}

// CalcSide prices one exterior elevation face. Body covers the face area,
// trim runs along its length.
func CalcSide(length, width float64, isBody, isTrim bool, rates config.Rates) float64 {
	var price float64
	if isBody {
		price += length * width * rates.SideBodyPerSqFt
	}
	if isTrim {
		price += length * rates.SideTrimPerLnFt
	}
	return price
}

func CalcHouse(sqft float64, rates config.Rates) float64 {
	return sqft * rates.HousePerSqFt
}

func CalcDeck(length, width float64, sandingRequired bool, rates config.Rates) float64 {
	rate := rates.DeckUnsandedPerSqFt
	if sandingRequired {
		rate = rates.DeckSandedPerSqFt
	}
	return length * width * rate
}

// CalcFence prices fence staining. With neither stain selected the fence
// prices at zero, not an error; crews often save a fence before the stain
// choice is made.
func CalcFence(length, height float64, transparentStain, solidStain, bothSides bool, rates config.Rates) float64 {
	sqft := length * height

	var base float64
	switch {
	case transparentStain:
		base = sqft * rates.FenceTransparentPerSqFt
	case solidStain:
		base = sqft * rates.FenceSolidPerSqFt
	}

	if bothSides {
		base *= 2
	}
	return base
}

// CalcCabinet prices a cabinetry job: flat base fee plus per-door and
// per-drawer rates.
func CalcCabinet(doors, drawers int, rates config.Rates) float64 {
	if doors < 0 {
		doors = 0
	}
	if drawers < 0 {
		drawers = 0
	}
	return rates.CabinetBase +
		float64(doors)*rates.CabinetPerDoor +
		float64(drawers)*rates.CabinetPerDrawer
}
