package overlay

import (
	"errors"
	"sync"

	"github.com/chewxy/math32"
)

// ErrNoShape is returned by EndShape when no shape was begun.
var ErrNoShape = errors.New("overlay: EndShape without BeginShape")

// Vertex is one draw list vertex. The layout matches the GL vertex
// attributes: position, texture coordinate, packed color.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd is a run of indices sharing one texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = untextured)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// maxCmdVertices is the most vertices one command can address with 16-bit
// indices.
const maxCmdVertices = 1 << 16

// drawListPool provides efficient reuse of DrawList buffers.
// Overlays are rebuilt every frame, so buffers are recycled rather than
// reallocated.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// NewDrawList returns an empty DrawList outside the pool.
func NewDrawList() *DrawList {
	dl := &DrawList{}
	dl.Clear()
	return dl
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates triangles for a frame and implements DrawSurface.
// Shapes are tessellated on the CPU: fills become triangles, lines become
// quads LineWidth pixels wide. Vertices are transformed when issued, so the
// transform stack never reaches the GPU.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command

	xform     matrixStack
	color     uint32
	lineWidth float32
	caps      uint8

	shapeOpen bool
	shapeKind ShapeKind
	shapePts  []Vec2
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0

	dl.xform.reset()
	dl.color = White.Packed()
	dl.lineWidth = 1
	dl.caps = 0
	dl.shapeOpen = false
	dl.shapePts = dl.shapePts[:0]
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw() // Force new command with new clip rect
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw() // Force new command with restored clip rect
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command. A command that would overflow 16-bit indices is split.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxCmdVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled, untransformed rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / math32.Hypot(dx, dy)
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2)
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates of the first corner
	X1, Y1 float32 // Screen coordinates of the opposite corner
	U0, V0 float32 // Texture coordinates at (X0, Y0)
	U1, V1 float32 // Texture coordinates at (X1, Y1)
}

// AddGlyphQuads draws a slice of glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}

	for _, q := range quads {
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// =============================================================================
// DrawSurface
// =============================================================================

// BeginShape starts collecting vertices. An unfinished shape is discarded.
func (dl *DrawList) BeginShape(kind ShapeKind) {
	dl.shapeOpen = true
	dl.shapeKind = kind
	dl.shapePts = dl.shapePts[:0]
}

// Vertex adds a vertex to the open shape, transformed by the current
// matrix. Vertices outside a shape are ignored.
func (dl *DrawList) Vertex(x, y float32) {
	if !dl.shapeOpen {
		return
	}
	tx, ty := dl.xform.top.Apply(x, y)
	dl.shapePts = append(dl.shapePts, Vec2{X: tx, Y: ty})
}

// EndShape tessellates the open shape into the buffers. Trailing vertices
// that do not complete a primitive are dropped.
func (dl *DrawList) EndShape() error {
	if !dl.shapeOpen {
		return ErrNoShape
	}
	dl.shapeOpen = false
	pts, c, w := dl.shapePts, dl.color, dl.lineWidth

	switch dl.shapeKind {
	case ShapeLines:
		for i := 0; i+1 < len(pts); i += 2 {
			dl.AddLine(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, c, w)
		}
	case ShapeLineStrip, ShapeLineLoop:
		for i := 0; i+1 < len(pts); i++ {
			dl.AddLine(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, c, w)
		}
		if dl.shapeKind == ShapeLineLoop && len(pts) > 2 {
			last := pts[len(pts)-1]
			dl.AddLine(last.X, last.Y, pts[0].X, pts[0].Y, c, w)
		}
	case ShapeTriangles:
		for i := 0; i+2 < len(pts); i += 3 {
			dl.AddTriangle(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, pts[i+2].X, pts[i+2].Y, c)
		}
	case ShapeQuads:
		for i := 0; i+3 < len(pts); i += 4 {
			dl.addFan(pts[i:i+4], c)
		}
	case ShapeTriangleFan, ShapePolygon:
		dl.addFan(pts, c)
	}
	return nil
}

// addFan fills a convex outline as a triangle fan around its first vertex.
func (dl *DrawList) addFan(pts []Vec2, color uint32) {
	if len(pts) < 3 || color&0xFF000000 == 0 {
		return
	}
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = Vertex{Pos: [2]float32{p.X, p.Y}, Color: color}
	}
	idx := dl.addVertices(verts...)
	for i := 1; i+1 < len(pts); i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i+1))
	}
}

// SetColor sets the color of subsequent shapes.
func (dl *DrawList) SetColor(c Color) { dl.color = c.Packed() }

// SetLineWidth sets the width of subsequent lines in pixels.
func (dl *DrawList) SetLineWidth(w float32) { dl.lineWidth = w }

// PushTransform saves the current transform.
func (dl *DrawList) PushTransform() { dl.xform.push() }

// PopTransform restores the last saved transform. Extra pops are ignored.
func (dl *DrawList) PopTransform() { dl.xform.pop() }

// Rotate rotates subsequent vertices by degrees about the origin.
func (dl *DrawList) Rotate(degrees float32) { dl.xform.rotate(degrees) }

// Scale scales subsequent vertices uniformly.
func (dl *DrawList) Scale(s float32) { dl.xform.scale(s) }

// Translate offsets subsequent vertices.
func (dl *DrawList) Translate(x, y float32) { dl.xform.translate(x, y) }

// Enable turns a capability on. The GL backend always blends, so the flags
// are only recorded.
func (dl *DrawList) Enable(c Capability) { dl.caps |= 1 << uint(c) }

// Disable turns a capability off.
func (dl *DrawList) Disable(c Capability) { dl.caps &^= 1 << uint(c) }

// Enabled reports whether a capability is on.
func (dl *DrawList) Enabled(c Capability) bool { return dl.caps&(1<<uint(c)) != 0 }

// Transform returns the current transform.
func (dl *DrawList) Transform() Matrix { return dl.xform.top }

// TransformDepth returns the number of saved transforms.
func (dl *DrawList) TransformDepth() int { return dl.xform.depth() }
