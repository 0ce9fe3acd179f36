package generator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"assetsym/internal/config"
)

// ErrStale reports that a generated file no longer matches its catalogs.
var ErrStale = errors.New("generated files are stale")

// Verify regenerates in memory and compares against the files on disk.
// On drift it returns a diff wrapped around ErrStale, suitable for CI
// output. A missing output file counts as drift.
func Verify(ctx context.Context, cfg *config.Config) error {
	rendered, err := Render(ctx, cfg)
	if err != nil {
		return err
	}

	if err := verifyFile(cfg.Output.GoFile, rendered.GoSource); err != nil {
		return err
	}
	if rendered.ObjC != nil {
		if err := verifyFile(cfg.Output.ObjCHeader, rendered.ObjC); err != nil {
			return err
		}
	}
	return nil
}

func verifyFile(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist, run assetsym generate: %w", path, ErrStale)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		return fmt.Errorf("%s is out of date (-want +got):\n%s%w", path, diff, ErrStale)
	}
	return nil
}
