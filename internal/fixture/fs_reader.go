package fixture

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

//go:embed data/*.json
var embedded embed.FS

// fsReader implements Reader over a file system.
type fsReader struct {
	fsys   fs.FS
	logger zerolog.Logger
}

// NewFSReader creates a reader over fsys.
func NewFSReader(fsys fs.FS, logger zerolog.Logger) Reader {
	return &fsReader{
		fsys:   fsys,
		logger: logger.With().Str("component", "fixture-reader").Logger(),
	}
}

// NewDirReader creates a reader over a local directory.
func NewDirReader(dir string, logger zerolog.Logger) Reader {
	return NewFSReader(os.DirFS(dir), logger)
}

// NewEmbeddedReader creates a reader over the fixtures compiled into the binary.
func NewEmbeddedReader(logger zerolog.Logger) Reader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewFSReader(sub, logger)
}

// Read returns the bytes of the named fixture.
func (r *fsReader) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		r.logger.Error().Err(err).Str("file", name).Msg("failed to read fixture file")
		return nil, fmt.Errorf("failed to read fixture file %s: %w", name, err)
	}

	r.logger.Debug().Str("file", name).Int("bytes", len(data)).Msg("fixture file read")
	return data, nil
}
