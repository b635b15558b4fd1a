package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudokugen/internal/domain"
)

// FS persists puzzles as JSON files bucketed by difficulty.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func diffDir(d domain.Difficulty) string { return d.String() }

var buckets = []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if p.Board == nil {
		return errors.New("invalid puzzle: missing board")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, d := range buckets {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		// difficulty absent in old files: infer from the folder found
		if out.Difficulty == 0 && d != domain.Easy {
			out.Difficulty = d
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	type meta struct {
		ID         string            `json:"id"`
		Name       string            `json:"name,omitempty"`
		Difficulty domain.Difficulty `json:"difficulty"`
		CreatedAt  int64             `json:"createdAt"`
	}

	var out []domain.PuzzleMeta
	for _, d := range buckets {
		ents, err := os.ReadDir(filepath.Join(s.dir, diffDir(d)))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, diffDir(d), e.Name()))
			if err != nil {
				continue
			}
			var mm meta
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			dd := mm.Difficulty
			if dd == 0 {
				dd = d // infer from folder if absent
			}
			out = append(out, domain.PuzzleMeta{
				ID:         mm.ID,
				Name:       mm.Name,
				Difficulty: dd,
				CreatedAt:  mm.CreatedAt,
			})
		}
	}
	return out, nil
}
