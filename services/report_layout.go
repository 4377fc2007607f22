package services

import "fmt"

// Canvas geometry for the shareable summary image. The layout is a single
// forward pass: the cursor starts at StartY, advances by a fixed amount per
// block and never resets. Content past the canvas bottom still gets
// coordinates; the Clipped count is the overflow signal.
const (
	CanvasWidth  = 400
	CanvasHeight = 800

	marginX = 20
	bulletX = 40
	startY  = 20

	titleAdvance     = 40
	roomNameAdvance  = 25
	bulletAdvance    = 20
	roomTotalAdvance = 30
	imageAdvance     = 120
	roomGapAdvance   = 20

	// Photos draw into a fixed square regardless of source size.
	ImageBoxSize = 100

	titleTextHeight = 18
	bodyTextHeight  = 16
)

// BlockKind tags what a layout block draws.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockRoomName
	BlockBullet
	BlockRoomTotal
	BlockImage
	BlockGrandTotal
)

// Block is one positioned element of the summary layout.
type Block struct {
	Kind  BlockKind
	Text  string
	Image []byte // set for BlockImage only
	X, Y  int
}

// Layout is the result of one layout pass.
type Layout struct {
	Width  int
	Height int
	Blocks []Block

	// Clipped counts blocks whose bottom edge lands past the canvas.
	// They are still present in Blocks; rasterizers draw what fits.
	Clipped int
}

// LayoutSummary positions every block of the summary report. The pass is
// deterministic: the same data always yields identical coordinates.
func LayoutSummary(data SummaryData) Layout {
	layout := Layout{Width: CanvasWidth, Height: CanvasHeight}
	y := startY

	layout.push(Block{Kind: BlockTitle, Text: data.Title, X: marginX, Y: y})
	y += titleAdvance

	for _, room := range data.Rooms {
		layout.push(Block{Kind: BlockRoomName, Text: "Room: " + room.Name, X: marginX, Y: y})
		y += roomNameAdvance

		for _, label := range room.Included {
			layout.push(Block{Kind: BlockBullet, Text: label, X: bulletX, Y: y})
			y += bulletAdvance
		}

		layout.push(Block{
			Kind: BlockRoomTotal,
			Text: "Room Total: " + FormatUSD(room.Total),
			X:    marginX,
			Y:    y,
		})
		y += roomTotalAdvance

		for _, img := range room.Images {
			layout.push(Block{Kind: BlockImage, Image: img, X: marginX, Y: y})
			y += imageAdvance
		}

		y += roomGapAdvance
	}

	layout.push(Block{
		Kind: BlockGrandTotal,
		Text: "Grand Total: " + FormatUSD(data.Totals.Grand),
		X:    marginX,
		Y:    y,
	})

	return layout
}

func (l *Layout) push(b Block) {
	if b.Y+blockHeight(b.Kind) > l.Height {
		l.Clipped++
	}
	l.Blocks = append(l.Blocks, b)
}

func blockHeight(kind BlockKind) int {
	switch kind {
	case BlockTitle, BlockGrandTotal:
		return titleTextHeight
	case BlockImage:
		return ImageBoxSize
	default:
		return bodyTextHeight
	}
}

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockRoomName:
		return "roomName"
	case BlockBullet:
		return "bullet"
	case BlockRoomTotal:
		return "roomTotal"
	case BlockImage:
		return "image"
	case BlockGrandTotal:
		return "grandTotal"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}
