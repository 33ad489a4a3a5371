package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Strips       int                `json:"strips"`
	Width        float64            `json:"width"`
	Height       float64            `json:"height"`
	MaxFoldAngle float64            `json:"max_fold_angle"`
	FPS          int                `json:"fps"`
	Duration     float64            `json:"duration"`
	Pointer      string             `json:"pointer"`
	Frames       int                `json:"frames"`
	Metrics      map[string]float64 `json:"metrics"`
}

// WallConfig rebuilds the wall configuration a run was recorded with.
func (m *RunMetadata) WallConfig() wall.Config {
	return wall.Config{StripCount: m.Strips, Width: m.Width, Height: m.Height, MaxFoldAngle: m.MaxFoldAngle}
}

// Save writes a run directory holding metadata.json and frames.csv and
// returns the new run ID. A failed save leaves no directory behind.
func (s *Store) Save(name, pointer string, cfg sim.Config, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := s.Path(runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Name:         name,
		Timestamp:    now,
		Strips:       result.Config.StripCount,
		Width:        result.Config.Width,
		Height:       result.Config.Height,
		MaxFoldAngle: result.Config.MaxFoldAngle,
		FPS:          cfg.FPS,
		Duration:     cfg.Duration,
		Pointer:      pointer,
		Frames:       result.FramesTaken,
		Metrics:      result.Metrics,
	}

	if err := s.writeRun(runID, meta, result); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			logger.Log.Warn("failed to remove partial run", zap.String("id", runID), zap.Error(rmErr))
		}
		return "", fmt.Errorf("save %s: %w", runID, err)
	}

	logger.Log.Debug("run saved", zap.String("id", runID), zap.Int("rows", len(result.Times)))
	return runID, nil
}

func (s *Store) writeRun(runID string, meta RunMetadata, result *sim.Result) error {
	metaFile, err := os.Create(filepath.Join(s.Path(runID), metadataFile))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	csvFile, err := os.Create(s.FramesPath(runID))
	if err != nil {
		return err
	}
	if err := WriteFrames(csvFile, result); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			logger.Log.Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Path(runID), metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads a run back into a result with its times, inputs and
// per-strip states.
func (s *Store) LoadFrames(runID string) (*sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(s.FramesPath(runID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	result, err := ReadFrames(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", runID, err)
	}
	result.Config = meta.WallConfig()
	result.Metrics = meta.Metrics
	result.FramesTaken = meta.Frames
	return result, nil
}

// Path returns the directory of a stored run.
func (s *Store) Path(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// FramesPath returns the frames.csv path of a stored run.
func (s *Store) FramesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, framesFile)
}
