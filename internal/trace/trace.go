// Package trace records one row per simulation tick and stores the run as a
// zstd-compressed Parquet file.
package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"snek/internal/game"
)

const schemaName = "snek_trace_v1"

// Row is the state of a scene after one tick.
type Row struct {
	Tick    int32  `parquet:"tick"`
	State   string `parquet:"state,dict"`
	Score   int32  `parquet:"score"`
	Boost   int32  `parquet:"boost"`
	Boosted bool   `parquet:"boosted"`
	Length  int32  `parquet:"length"`

	HeadX   float32 `parquet:"head_x"`
	HeadY   float32 `parquet:"head_y"`
	Heading float32 `parquet:"heading"`
	Speed   float32 `parquet:"speed"`

	FoodX         int32 `parquet:"food_x"`
	FoodY         int32 `parquet:"food_y"`
	SpecialActive bool  `parquet:"special_active"`
	SpecialX      int32 `parquet:"special_x"`
	SpecialY      int32 `parquet:"special_y"`
	Particles     int32 `parquet:"particles"`

	BodyX  []int32  `parquet:"body_x"`
	BodyY  []int32  `parquet:"body_y"`
	Events []string `parquet:"events"`
}

// Meta is the run-level metadata stored next to the rows.
type Meta struct {
	Schema string
	Seed   uint64
	Model  string
}

// Recorder collects rows from a scene. Events raised during a tick are
// attached to the row captured after it.
type Recorder struct {
	meta    Meta
	rows    []Row
	pending []string
}

// NewRecorder subscribes to the scene's events.
func NewRecorder(scene *game.Scene) *Recorder {
	r := &Recorder{meta: Meta{
		Schema: schemaName,
		Seed:   scene.Session.Seed,
		Model:  scene.Config().Model.String(),
	}}
	scene.Bus().SubscribeAll(func(e game.Event) {
		r.pending = append(r.pending, e.Type.String())
	})
	return r
}

// Capture appends the current state of scene.
func (r *Recorder) Capture(scene *game.Scene) {
	s := scene.Snake
	pos := s.Position()
	row := Row{
		Tick:          int32(scene.Session.Tick),
		State:         scene.Session.State.String(),
		Score:         int32(scene.Session.Score),
		Boost:         int32(scene.Session.Boost.Reserve),
		Boosted:       s.Boosted,
		Length:        int32(s.Len()),
		HeadX:         float32(pos.X),
		HeadY:         float32(pos.Y),
		Heading:       float32(s.Heading),
		Speed:         float32(s.Speed),
		FoodX:         int32(scene.Food.Rect().X),
		FoodY:         int32(scene.Food.Rect().Y),
		SpecialActive: scene.Special.Active(),
		Particles:     int32(scene.Special.Emitter.Len() + scene.Bursts.Len()),
		BodyX:         make([]int32, len(s.Body)),
		BodyY:         make([]int32, len(s.Body)),
		Events:        r.pending,
	}
	if row.SpecialActive {
		row.SpecialX = int32(scene.Special.Rect().X)
		row.SpecialY = int32(scene.Special.Rect().Y)
	}
	for i, seg := range s.Body {
		row.BodyX[i] = int32(seg.X)
		row.BodyY[i] = int32(seg.Y)
	}
	r.rows = append(r.rows, row)
	r.pending = nil
}

func (r *Recorder) Rows() []Row { return r.rows }

func (r *Recorder) Meta() Meta { return r.meta }

// WriteFile stores the rows at path. The file is written next to path and
// renamed into place so readers never see a partial trace.
func (r *Recorder) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, r.rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", r.meta.Schema),
		parquet.KeyValueMetadata("seed", strconv.FormatUint(r.meta.Seed, 10)),
		parquet.KeyValueMetadata("model", r.meta.Model),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadFile loads a trace written by WriteFile.
func ReadFile(path string) (Meta, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return Meta{}, nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return Meta{}, nil, fmt.Errorf("open parquet: %w", err)
	}

	var meta Meta
	meta.Schema, _ = pf.Lookup("schema")
	meta.Model, _ = pf.Lookup("model")
	if s, ok := pf.Lookup("seed"); ok {
		if meta.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return Meta{}, nil, fmt.Errorf("seed metadata %q: %w", s, err)
		}
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	rows := make([]Row, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return Meta{}, nil, fmt.Errorf("read rows: %w", err)
	}
	return meta, rows[:n], nil
}
