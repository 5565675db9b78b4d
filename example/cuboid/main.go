package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akmonengine/brush"
	"github.com/akmonengine/brush/export"
	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/texdef"
	"github.com/go-gl/mathgl/mgl64"
)

// BRepDebugger prints the notifications of one brush
type BRepDebugger struct {
	name     string
	vertices int
	edges    int
}

func (d *BRepDebugger) Listen(event brush.Event) {
	switch e := event.(type) {
	case brush.VertexClearEvent:
		d.vertices = 0
	case brush.VertexPushBackEvent:
		d.vertices++
	case brush.EdgeClearEvent:
		d.edges = 0
	case brush.EdgePushBackEvent:
		d.edges++
	case brush.VerifyEvent:
		fmt.Printf("   %s: %d vertices, %d edges, %d faces\n", d.name, d.vertices, d.edges, e.Brush.ContributingFaces())
	}
}

// SetupScene creates a map with a floor, a pillar and a ramp
func SetupScene() (*brush.Map, error) {
	m, err := brush.NewMap(brush.Config{MaxWorldCoord: brush.DefaultMaxWorldCoord, LogDegenerate: true})
	if err != nil {
		return nil, err
	}

	floor := m.NewBrush()
	floor.Events.Subscribe((&BRepDebugger{name: "floor"}).Listen)
	if err := floor.ConstructCuboid(geom.AABB{Min: mgl64.Vec3{-256, -256, -16}, Max: mgl64.Vec3{256, 256, 0}}, "textures/base/floor", texdef.DefaultProjection()); err != nil {
		return nil, err
	}

	pillar := m.NewBrush()
	pillar.Events.Subscribe((&BRepDebugger{name: "pillar"}).Listen)
	if err := pillar.ConstructPrism(geom.AABB{Min: mgl64.Vec3{-32, -32, 0}, Max: mgl64.Vec3{32, 32, 192}}, 8, 2, "textures/base/pillar", texdef.DefaultProjection()); err != nil {
		return nil, err
	}

	// a cube with one slanted top face
	ramp := m.NewBrush()
	ramp.Events.Subscribe((&BRepDebugger{name: "ramp"}).Listen)
	if err := ramp.ConstructCuboid(geom.AABB{Min: mgl64.Vec3{64, -64, 0}, Max: mgl64.Vec3{192, 64, 64}}, "textures/base/ramp", texdef.DefaultProjection()); err != nil {
		return nil, err
	}
	slope := geom.PlaneFromPoints(mgl64.Vec3{64, -64, 64}, mgl64.Vec3{192, -64, 0}, mgl64.Vec3{64, 64, 64})
	if _, err := ramp.AddFace(slope); err != nil {
		return nil, err
	}

	return m, nil
}

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
	brush.SetLogger(slog.Default())

	m, err := SetupScene()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Evaluating map")
	m.EvaluateAll()
	fmt.Printf("Map bounds: %v .. %v\n", m.Bounds().Min, m.Bounds().Max)

	ramp := m.Brushes()[2]
	ramp.RemoveEmptyFaces()
	fmt.Printf("Ramp keeps %d faces\n", ramp.NumFaces())

	fmt.Println("Moving the pillar")
	pillar := m.Brushes()[1]
	pillar.Translate(mgl64.Vec3{-128, 0, 0})
	m.EvaluateAll()

	box := geom.AABB{Min: mgl64.Vec3{-200, -8, 8}, Max: mgl64.Vec3{-100, 8, 16}}
	fmt.Printf("Brushes around %v: %d\n", box.Origin(), len(m.BrushesIn(box)))

	path := filepath.Join(os.TempDir(), "brushes.stl")
	if err := export.SaveSTL(path, m.Brushes()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d triangles to %s\n", len(export.Triangles(m.Brushes()...)), path)
}
